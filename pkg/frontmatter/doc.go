// Package frontmatter splits skill Markdown files into a "---" delimited
// frontmatter block and a body, and formats new files with YAML frontmatter.
//
// Splitting is purely textual. The frontmatter block must start at the very
// beginning of the document with a "---" line and ends at the first following
// line that begins with "---". Fields are looked up line by line with
// [Document.Field]; nested YAML is never interpreted.
//
// # Basic Usage
//
//	doc := frontmatter.Split(content)
//	if !doc.HasFrontmatter {
//		// report missing frontmatter
//	}
//	name, ok := doc.Field("name")
//
// # Formatting
//
// [Format] serializes a struct as YAML between delimiters and appends the
// body. Both LF and CRLF input are accepted by [Split]; CRLF is normalized.
package frontmatter
