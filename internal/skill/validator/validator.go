// Package validator lint-checks SKILL.md documents: required frontmatter
// fields, naming rules, body length, and recommended structure.
package validator

import (
	"log/slog"
	"regexp"
	"strings"
	"unicode/utf8"

	"github.com/thoreinstein/skillcheck/internal/errors"
	"github.com/thoreinstein/skillcheck/internal/logging"
	"github.com/thoreinstein/skillcheck/internal/validator"
	"github.com/thoreinstein/skillcheck/pkg/fileutil"
	"github.com/thoreinstein/skillcheck/pkg/frontmatter"
)

const (
	// minDescriptionLength is the description length (in characters) below
	// which a warning is raised.
	minDescriptionLength = 20

	// minBodyLength is the body length (in characters) below which an error
	// is raised.
	minBodyLength = 100
)

// Field names attached to issues.
const (
	fieldFrontmatter = "frontmatter"
	fieldName        = "name"
	fieldDescription = "description"
	fieldLicense     = "license"
	fieldBody        = "body"
)

// triggerPhrases are the description phrases that announce when to use a skill.
var triggerPhrases = []string{"use this when", "use when"}

// successWords mark a body as describing when the task is finished.
var successWords = []string{"success", "complete", "done"}

// sectionCheck is a recommended heading pattern and the warning raised
// when the body has no match.
type sectionCheck struct {
	pattern *regexp.Regexp
	message string
}

// sectionChecks run in order against the body. Patterns are case-insensitive
// and may match anywhere after a '#'.
var sectionChecks = []sectionCheck{
	{regexp.MustCompile(`(?i)#+.*when.*use|#+.*use.*when`), MsgNoWhenToUseSection},
	{regexp.MustCompile(`(?i)#+.*(process|steps)`), MsgNoProcessSection},
	{regexp.MustCompile(`(?i)#+.*example`), MsgNoExamplesSection},
}

// numberedStepRegex matches a line starting with digits and a period.
var numberedStepRegex = regexp.MustCompile(`(?m)^\s*\d+\.`)

// Option configures a Validator.
type Option func(*Validator)

// Validator checks skill documents. It holds no per-document state and may
// be reused.
type Validator struct {
	logger *slog.Logger
}

// New creates a new Validator with the given options.
func New(opts ...Option) *Validator {
	v := &Validator{
		logger: logging.NewDiscard(),
	}
	for _, opt := range opts {
		opt(v)
	}
	return v
}

// WithLogger sets the logger used for debug output of each finding.
func WithLogger(logger *slog.Logger) Option {
	return func(v *Validator) {
		if logger != nil {
			v.logger = logger
		}
	}
}

// ValidateFile reads the whole file at path and validates its content.
// Read failures are returned as errors; a missing path or a directory
// matches errors.ErrNotFound.
func (v *Validator) ValidateFile(path string) (*validator.Result, error) {
	data, err := fileutil.ReadRegularFile(path)
	if err != nil {
		return nil, errors.Wrap(err, "reading skill file")
	}
	v.logger.Debug("read skill file", "path", path, "bytes", len(data))
	return v.Validate(string(data)), nil
}

// Validate runs every check against content and returns the findings in
// check order. All checks always run; field checks are skipped only when
// the document has no frontmatter.
func (v *Validator) Validate(content string) *validator.Result {
	doc := frontmatter.Split(content)
	c := &checker{doc: doc, result: &validator.Result{}, logger: v.logger}

	if !doc.HasFrontmatter {
		c.error(fieldFrontmatter, MsgMissingFrontmatter)
	} else {
		c.checkName()
		c.checkDescription()
		c.checkLicense()
	}

	c.checkBodyLength()
	c.checkSections()
	c.checkNumberedSteps()
	c.checkCodeExamples()
	c.checkSuccessCriteria()

	return c.result
}

// checker carries one validation pass.
type checker struct {
	doc    *frontmatter.Document
	result *validator.Result
	logger *slog.Logger
}

func (c *checker) error(field, msg string) {
	c.logger.Debug("check failed", "severity", "error", "field", field, "message", msg)
	c.result.AddError(field, msg)
}

func (c *checker) warn(field, msg string) {
	c.logger.Debug("check failed", "severity", "warning", "field", field, "message", msg)
	c.result.AddWarning(field, msg)
}

func (c *checker) checkName() {
	name, ok := c.doc.Field(fieldName)
	if !ok {
		c.error(fieldName, MsgMissingName)
		return
	}
	if name != strings.ToLower(name) {
		c.error(fieldName, MsgNameNotLowercase)
	}
	if strings.Contains(name, " ") {
		c.error(fieldName, MsgNameHasSpaces)
	}
}

func (c *checker) checkDescription() {
	desc, ok := c.doc.Field(fieldDescription)
	if !ok {
		c.error(fieldDescription, MsgMissingDescription)
		return
	}
	if utf8.RuneCountInString(desc) < minDescriptionLength {
		c.warn(fieldDescription, MsgDescriptionShort)
	}
	if !containsAny(strings.ToLower(desc), triggerPhrases) {
		c.warn(fieldDescription, MsgDescriptionNoTrigger)
	}
}

func (c *checker) checkLicense() {
	if _, ok := c.doc.Field(fieldLicense); !ok {
		c.warn(fieldLicense, MsgMissingLicense)
	}
}

func (c *checker) checkBodyLength() {
	if utf8.RuneCountInString(c.doc.Body) < minBodyLength {
		c.error(fieldBody, MsgBodyTooShort)
	}
}

func (c *checker) checkSections() {
	for _, sc := range sectionChecks {
		if !sc.pattern.MatchString(c.doc.Body) {
			c.warn(fieldBody, sc.message)
		}
	}
}

func (c *checker) checkNumberedSteps() {
	if !numberedStepRegex.MatchString(c.doc.Body) {
		c.warn(fieldBody, MsgNoNumberedSteps)
	}
}

func (c *checker) checkCodeExamples() {
	if !strings.Contains(c.doc.Body, "```") {
		c.warn(fieldBody, MsgNoCodeExamples)
	}
}

func (c *checker) checkSuccessCriteria() {
	if !containsAny(strings.ToLower(c.doc.Body), successWords) {
		c.warn(fieldBody, MsgNoSuccessCriteria)
	}
}

func containsAny(s string, subs []string) bool {
	for _, sub := range subs {
		if strings.Contains(s, sub) {
			return true
		}
	}
	return false
}
