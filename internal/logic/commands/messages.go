package commands

// Messages shared by several commands and by the parser.
const (
	MessageInvalidCommandFormat     = "Invalid command format! \n%s"
	MessageUnknownCommand           = "Unknown command"
	MessageInvalidFlashcardIndex    = "The flashcard index provided is invalid"
	MessageFlashcardsListedOverview = "%d flashcards listed!"
	MessageTooManyQuestions         = "Only one question is allowed per flashcard"
	MessageDuplicateFlashcard       = "This flashcard already exists in QuickCache"
	MessageSaveFailed               = "Could not save data to file: %s"
)

// Command words.
const (
	WordAdd        = "add"
	WordAddMCQ     = "addmcq"
	WordEdit       = "edit"
	WordDelete     = "delete"
	WordFind       = "find"
	WordList       = "list"
	WordOpen       = "open"
	WordTest       = "test"
	WordStats      = "stats"
	WordClearStats = "clearstats"
	WordClear      = "clear"
	WordExport     = "export"
	WordImport     = "import"
	WordHistory    = "history"
	WordHelp       = "help"
	WordExit       = "exit"
)

// Usage strings, shown after an invalid command format and by help.
const (
	UsageAdd = WordAdd + ": Adds an open ended question to QuickCache.\n" +
		"Parameters: q/QUESTION a/ANSWER [t/TAG]... [d/DIFFICULTY]\n" +
		"Example: " + WordAdd + " q/What is the capital of France? a/Paris t/geography d/LOW"

	UsageAddMCQ = WordAddMCQ + ": Adds a multiple choice question to QuickCache.\n" +
		"Parameters: q/QUESTION a/ANSWER c/CHOICE... [t/TAG]... [d/DIFFICULTY]\n" +
		"Example: " + WordAddMCQ + " q/What is 1 + 1? a/2 c/1 c/2 c/3 t/math d/MEDIUM"

	UsageEdit = WordEdit + ": Edits the flashcard identified by the index number used in the displayed list.\n" +
		"Existing values will be overwritten by the input values. An empty t/ removes every tag.\n" +
		"Parameters: INDEX (must be a positive integer) [q/QUESTION] [a/ANSWER] [c/CHOICE]... [t/TAG]... [d/DIFFICULTY]\n" +
		"Example: " + WordEdit + " 1 a/Berlin d/HIGH"

	UsageDelete = WordDelete + ": Deletes the flashcard identified by the index number used in the displayed list,\n" +
		"or every flashcard carrying all of the given tags.\n" +
		"Parameters: INDEX (must be a positive integer) or t/TAG...\n" +
		"Example: " + WordDelete + " 1 or " + WordDelete + " t/math"

	UsageFind = WordFind + ": Finds all flashcards matching every given criterion.\n" +
		"Parameters: [q/KEYWORD]... [t/TAG]... [d/DIFFICULTY] (at least one)\n" +
		"Example: " + WordFind + " q/capital t/geography"

	UsageList = WordList + ": Lists all flashcards.\nExample: " + WordList

	UsageOpen = WordOpen + ": Shows the question of the flashcard identified by the index number used in the displayed list.\n" +
		"Parameters: INDEX (must be a positive integer)\n" +
		"Example: " + WordOpen + " 1"

	UsageTest = WordTest + ": Tests the flashcard identified by the index number used in the displayed list.\n" +
		"Parameters: INDEX a/ANSWER for open ended questions, INDEX o/OPTION for multiple choice questions\n" +
		"Example: " + WordTest + " 1 a/Paris or " + WordTest + " 2 o/3"

	UsageStats = WordStats + ": Shows the statistics of the flashcard identified by the index number used in the displayed list,\n" +
		"of every flashcard carrying all of the given tags, or of every displayed flashcard.\n" +
		"Parameters: [INDEX] or t/TAG...\n" +
		"Example: " + WordStats + " 1 or " + WordStats + " t/math"

	UsageClearStats = WordClearStats + ": Clears the statistics of the flashcard identified by the index number used in the displayed list.\n" +
		"Parameters: INDEX (must be a positive integer)\n" +
		"Example: " + WordClearStats + " 1"

	UsageClear = WordClear + ": Deletes every flashcard.\nExample: " + WordClear

	UsageExport = WordExport + ": Exports the displayed flashcards to a JSON file in the export directory.\n" +
		"Parameters: FILE_NAME.json\n" +
		"Example: " + WordExport + " geography.json"

	UsageImport = WordImport + ": Imports flashcards from a .json, .csv or .xlsx file in the export directory.\n" +
		"Parameters: FILE_NAME\n" +
		"Example: " + WordImport + " geography.csv"

	UsageHistory = WordHistory + ": Lists the commands entered in this session, most recent first.\nExample: " + WordHistory

	UsageHelp = WordHelp + ": Shows the command reference.\nExample: " + WordHelp

	UsageExit = WordExit + ": Exits QuickCache.\nExample: " + WordExit
)

// Usages lists every command usage in the order help displays them.
var Usages = []string{
	UsageAdd, UsageAddMCQ, UsageEdit, UsageDelete, UsageFind, UsageList,
	UsageOpen, UsageTest, UsageStats, UsageClearStats, UsageClear,
	UsageExport, UsageImport, UsageHistory, UsageHelp, UsageExit,
}
