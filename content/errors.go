// ABOUTME: Sentinel errors for the content editor's command contract.
// ABOUTME: Missing-id cases are deliberately NOT errors; they degrade to no-ops.
package content

import "errors"

var (
	// ErrUnknownCommand indicates a command variant the editor does not handle.
	ErrUnknownCommand = errors.New("unknown command")

	// ErrDraftTitleRequired indicates a CreateBlogPost draft without a title.
	ErrDraftTitleRequired = errors.New("blog post draft requires a title")
)
