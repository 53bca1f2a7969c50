package validator

// Finding messages. These strings are part of the tool's output contract.
const (
	MsgMissingFrontmatter   = "Missing YAML frontmatter (---...---)"
	MsgMissingName          = "Missing required field: name"
	MsgNameNotLowercase     = "Name must be lowercase"
	MsgNameHasSpaces        = "Name must use hyphens instead of spaces"
	MsgMissingDescription   = "Missing required field: description"
	MsgDescriptionShort     = "Description is very short - consider being more specific"
	MsgDescriptionNoTrigger = `Description should include trigger conditions (e.g., "Use this when...")`
	MsgMissingLicense       = "Consider adding a license field"
	MsgBodyTooShort         = "Skill body is too short - add detailed instructions"
	MsgNoWhenToUseSection   = "Consider adding: When to Use section"
	MsgNoProcessSection     = "Consider adding: Process/Steps section"
	MsgNoExamplesSection    = "Consider adding: Examples section"
	MsgNoNumberedSteps      = "Consider using numbered steps for processes"
	MsgNoCodeExamples       = "Consider adding code examples in fenced code blocks"
	MsgNoSuccessCriteria    = "Consider adding success criteria to define when the task is complete"
)
