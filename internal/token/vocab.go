package token

// Entry documents one vocabulary word for hover and completion.
type Entry struct {
	Word    string
	Detail  string
	Doc     string
	Snippet string
}

var keywordEntries = []Entry{
	// structure
	{"domain", "Top-level container for a bounded context", "Top-level container for a bounded context in DDD. Groups related contexts, types, and definitions.", "domain ${1:Name} is {\n  ${2:???}\n}"},
	{"context", "A bounded context", "A bounded context containing entities, types, and functionality. Represents a cohesive subsystem.", "context ${1:Name} is {\n  ${2:???}\n}"},
	{"application", "A user-facing application", "An application exposing groups of inputs and outputs to users.", "application ${1:Name} is {\n  ${2:???}\n}"},

	// entities and aggregates
	{"entity", "A domain entity", "A domain entity with identity and lifecycle. Can be an aggregate root.", "entity ${1:Name} is {\n  ${2:???}\n}"},
	{"adaptor", "An adapter for external systems", "An adapter for external systems integration.", "adaptor ${1:Name} is {\n  ${2:???}\n}"},
	{"projector", "Projects events into a read model", "Projects events into a read model.", "projector ${1:Name} is {\n  ${2:???}\n}"},
	{"repository", "Storage abstraction for aggregates", "Storage abstraction for aggregates.", "repository ${1:Name} is {\n  ${2:???}\n}"},
	{"saga", "Coordinates long-running transactions", "Coordinates long-running transactions across aggregates.", "saga ${1:Name} is {\n  ${2:???}\n}"},

	// types
	{"type", "A type definition", "A type definition. Can be a simple type, record, enumeration, or other type expression.", "type ${1:Name} is ${2:String}"},
	{"record", "A record type", "A record type with named fields.", "record ${1:Name} is {\n  ${2:field}: ${3:String}\n}"},
	{"enumeration", "An enumeration type", "An enumeration type with named values.", "enumeration ${1:Name} is {\n  ${2:Value1}, ${3:Value2}\n}"},
	{"alternation", "A sum type (union)", "A sum type (union) that can be one of several alternatives.", "alternation ${1:Name} is {\n  ${2:Option1} | ${3:Option2}\n}"},
	{"aggregation", "An aggregation type", "An aggregation type representing a collection.", "aggregation ${1:Name} is {\n  ${2:???}\n}"},

	// messages
	{"command", "A command message", "A command that triggers behavior. Commands are handled by entities to produce events.", "command ${1:Name} is {\n  ${2:field}: ${3:String}\n}"},
	{"event", "An event message", "An event representing something that happened in the domain. Events are facts.", "event ${1:Name} is {\n  ${2:field}: ${3:String}\n}"},
	{"query", "A query message", "A query for retrieving information without side effects.", "query ${1:Name} is {\n  ${2:field}: ${3:String}\n}"},
	{"result", "A result type", "The result type returned by a query or function.", "result ${1:Name} is {\n  ${2:field}: ${3:String}\n}"},

	// behavior
	{"handler", "Handles commands or events", "Handles commands or events and implements business logic.", "handler ${1:Name} is {\n  ${2:???}\n}"},
	{"function", "A pure function", "A pure function definition.", "function ${1:Name}(${2:param}: ${3:String}): ${4:String} is {\n  ${5:???}\n}"},
	{"invariant", "A business rule or constraint", "A business rule or constraint that must always be true.", "invariant ${1:Name} is {\n  ${2:???}\n}"},
	{"state", "The state/data structure", "The state/data structure of an entity or aggregate.", "state ${1:Name} is {\n  ${2:field}: ${3:String}\n}"},

	// streaming
	{"inlet", "An input port", "An input port for a processor or pipe.", "inlet ${1:Name} is ${2:Type}"},
	{"outlet", "An output port", "An output port for a processor or pipe.", "outlet ${1:Name} is ${2:Type}"},
	{"connector", "Connects outlet to inlet", "Connects an outlet to an inlet for data flow.", "connector ${1:Name} from ${2:outlet} to ${3:inlet}"},
	{"streamlet", "A stream processing element", "A stream processing element.", "streamlet ${1:Name} is {\n  ${2:???}\n}"},
	{"flow", "A data flow or pipeline", "A data flow or processing pipeline.", "flow ${1:Name} is {\n  ${2:???}\n}"},
	{"source", "A source of streaming data", "A source of streaming data.", "source ${1:Name} is ${2:Type}"},
	{"sink", "A destination for streaming data", "A destination for streaming data.", "sink ${1:Name} is ${2:Type}"},
	{"merge", "Merges multiple streams", "Merges multiple streams into one.", "merge ${1:Name}"},
	{"split", "Splits one stream", "Splits one stream into multiple.", "split ${1:Name}"},
	{"router", "Routes messages by content", "Routes messages based on content.", "router ${1:Name}"},
	{"pipe", "A data transformation pipe", "A simple data transformation pipe.", "pipe ${1:Name}"},
	{"void", "No data or empty stream", "Represents no data or empty stream.", "void"},

	// epics and stories
	{"epic", "A user story or use case", "A user story or use case describing system behavior from user perspective.", "epic ${1:Name} is {\n  ${2:???}\n}"},
	{"story", "A user story", "A user story within an epic.", "story ${1:Name} is {\n  ${2:???}\n}"},
	{"case", "A use case scenario", "A use case scenario.", "case ${1:Name} is {\n  ${2:???}\n}"},
	{"interaction", "A user/system interaction", "An interaction between user and system.", ""},
	{"step", "A step in a story", "A step in a user story or use case.", ""},

	// people
	{"author", "Defines an author", "Defines an author or contributor to the specification.", "author ${1:Name} is {\n  name: \"${2:Full Name}\"\n  email: \"${3:email@example.com}\"\n}"},
	{"user", "A user role", "A user role in the system.", "user ${1:Name} is {\n  ${2:???}\n}"},
	{"group", "A group of users", "A group of users or a team.", "group ${1:Name} is {\n  ${2:???}\n}"},
	{"organization", "An organization", "An organization owning or using the system.", "organization ${1:Name} is {\n  ${2:???}\n}"},

	// options and glossary
	{"option", "Options/modifiers", "Options/modifiers for definitions (e.g., aggregate, transient, finite, technology).", "option ${1:name}"},
	{"term", "A glossary term", "A glossary term definition.", "term ${1:Name} is \"${2:definition}\""},

	// files
	{"include", "Includes another RIDDL file", "Includes another RIDDL file.", "include \"${1:path/to/file.riddl}\""},
	{"import", "Imports from another context", "Imports definitions from another context or domain.", "import ${1:context}.${2:definition}"},

	// descriptions
	{"briefly", "Brief description", "Provides a brief one-line description.", ""},
	{"described", "Detailed description", "Introduces a detailed description block.", ""},
	{"explained", "Explanation or rationale", "Provides an explanation or rationale.", ""},

	// statements
	{"send", "Sends a message", "Sends a message to an entity or outlet.", ""},
	{"tell", "Sends a command", "Sends a command or message to a handler.", ""},
	{"call", "Calls a function", "Calls a function or invokes behavior.", ""},
	{"reply", "Sends a reply", "Sends a reply message in response to a query or command.", ""},
	{"become", "Changes state", "Changes state in a state machine or saga.", ""},
	{"when", "Condition or temporal clause", "Introduces a condition or temporal clause.", ""},
	{"if", "Conditional branch", "Conditional branching.", ""},
	{"else", "Alternative branch", "Alternative branch in conditional logic.", ""},
	{"do", "Action block", "Introduces an action block.", ""},
	{"foreach", "Iteration", "Iterates over a collection.", ""},
	{"on", "Handler trigger", "Event handler trigger (e.g., \"on init\", \"on command\").", ""},

	// fields and values
	{"field", "A field definition", "Defines a field in a record, state, or message type.", ""},
	{"value", "A constant or enumeration value", "A constant or enumeration value.", ""},
	{"constant", "A constant value", "A constant value definition.", ""},
	{"reference", "A reference", "A reference to another definition.", ""},
	{"link", "External link", "Links to external documentation or resources.", ""},
	{"requires", "Dependency or precondition", "Specifies a required dependency or precondition.", ""},
	{"required", "Required field", "Marks a field as required (non-optional).", ""},
	{"optional", "Optional element", "Marks a field or element as optional.", ""},
	{"init", "Initialization", "Initialization logic or state.", ""},
	{"execute", "Executes an action", "Executes a command or action.", ""},
	{"returns", "Return type", "Specifies the return type of a function.", ""},
	{"example", "Example usage", "Provides an example usage or scenario.", ""},
	{"focus", "Primary focus", "Highlights the primary focus or subject.", ""},
	{"shown", "Shown in documentation", "Indicates something should be shown in documentation.", ""},
	{"contains", "Containment", "Indicates containment relationship.", ""},
	{"relationship", "A relationship", "Defines a relationship between entities.", ""},
}

var predefinedEntries = []Entry{
	{"String", "Text type", "A sequence of Unicode characters.", ""},
	{"Integer", "Whole number (64-bit)", "A whole number (64-bit signed integer).", ""},
	{"Number", "Floating point number", "A numeric value (double-precision floating point).", ""},
	{"Boolean", "True or false", "A true or false value.", ""},
	{"Date", "Calendar date", "A calendar date.", ""},
	{"Time", "Time of day", "A time of day.", ""},
	{"DateTime", "Date and time", "A specific point in time.", ""},
	{"Timestamp", "Timestamp with milliseconds", "A timestamp with millisecond precision.", ""},
	{"Duration", "Length of time", "A length of time.", ""},
	{"URL", "Web address", "A uniform resource locator.", ""},
	{"Id", "Identifier type", "An identifier type. Usage: `Id(EntityName)` creates a unique identifier for that entity.", "Id(${1:EntityName})"},
	{"UUID", "Universally unique ID", "A universally unique identifier (128-bit).", ""},
	{"Decimal", "Exact decimal number", "A decimal number with exact precision.", ""},
	{"Currency", "Monetary value", "A monetary value with currency code.", ""},
	{"Length", "Physical length", "A physical length measurement.", ""},
	{"Mass", "Mass/weight", "A mass/weight measurement.", ""},
	{"Temperature", "Temperature", "A temperature measurement.", ""},
	{"Nothing", "Unit type", "The unit type representing no value.", ""},
	{"Abstract", "Abstract type", "An abstract type that must be refined.", ""},
	{"Optional", "Optional value", "An optional value that may or may not be present. Usage: `TypeName?`", ""},
}

var readabilityEntries = []Entry{
	{"and", "Readability word", "Conjunction for connecting related clauses or items.", ""},
	{"are", "Readability word", "Plural form of \"is\" for readability.", ""},
	{"as", "Readability word", "Indicates a role or alias.", ""},
	{"at", "Readability word", "Indicates location or position.", ""},
	{"by", "Readability word", "Indicates agency or authorship.", ""},
	{"for", "Readability word", "Indicates purpose or beneficiary.", ""},
	{"from", "Readability word", "Indicates source or origin.", ""},
	{"in", "Readability word", "Indicates containment or location.", ""},
	{"is", "Readability word", "Singular form for readability and natural language flow.", ""},
	{"of", "Readability word", "Indicates possession or relation.", ""},
	{"so", "Readability word", "Indicates consequence or purpose.", ""},
	{"that", "Readability word", "Introduces a subordinate clause.", ""},
	{"to", "Readability word", "Indicates direction or recipient.", ""},
	{"wants", "Readability word", "Expresses user desire in user stories.", ""},
	{"with", "Readability word", "Indicates accompaniment or association with something.", ""},
}

func index(entries []Entry, fold bool) map[string]Entry {
	m := make(map[string]Entry, len(entries))
	for _, e := range entries {
		key := e.Word
		if fold {
			key = lower(key)
		}
		m[key] = e
	}
	return m
}

var (
	keywordIndex     = index(keywordEntries, true)
	predefinedIndex  = index(predefinedEntries, false)
	readabilityIndex = index(readabilityEntries, true)
)

// LookupKeyword finds the documentation of a keyword, ignoring case.
func LookupKeyword(word string) (Entry, bool) {
	e, ok := keywordIndex[lower(word)]
	return e, ok
}

// LookupPredefined finds a predefined type by its exact spelling.
func LookupPredefined(word string) (Entry, bool) {
	e, ok := predefinedIndex[word]
	return e, ok
}

// LookupReadability finds a readability word, ignoring case.
func LookupReadability(word string) (Entry, bool) {
	e, ok := readabilityIndex[lower(word)]
	return e, ok
}

// Keywords lists the documented keywords in presentation order.
func Keywords() []Entry { return keywordEntries }

// PredefinedTypes lists the predefined types in presentation order.
func PredefinedTypes() []Entry { return predefinedEntries }

// ReadabilityWords lists the readability words in presentation order.
func ReadabilityWords() []Entry { return readabilityEntries }
