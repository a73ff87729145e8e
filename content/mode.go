// ABOUTME: EditorMode is the explicit sum type for the admin's blog editing context.
// ABOUTME: Idle, EditingExisting(post id), or ComposingNew(draft); never inferred from nullable state.
package content

// EditorMode is the editing context an admin session carries. Sealed: exactly
// the three variants below.
type EditorMode interface {
	ModeName() string
	modeSeal()
}

// Idle means no post is selected and no draft is in progress.
type Idle struct{}

func (Idle) ModeName() string { return "idle" }
func (Idle) modeSeal()        {}

// EditingExisting targets one existing post by id.
type EditingExisting struct {
	PostID string `json:"postId"`
}

func (EditingExisting) ModeName() string { return "editing" }
func (EditingExisting) modeSeal()        {}

// ComposingNew carries an in-progress draft that has not been created yet.
type ComposingNew struct {
	Draft BlogPostDraft `json:"draft"`
}

func (ComposingNew) ModeName() string { return "composing" }
func (ComposingNew) modeSeal()        {}

// NewDraft returns the pre-filled draft a composing session starts from.
// SEO fields stay empty so finalization fills the templated defaults.
func NewDraft() BlogPostDraft {
	return BlogPostDraft{
		Author:   DefaultPostAuthor,
		ImageURL: DefaultPostImageURL,
	}
}

// SelectedPostID resolves the post id an SEO edit should target under the
// given mode. Empty when the mode selects no existing post, which makes the
// downstream UpdateSEO command a no-op per the editor's contract.
func SelectedPostID(mode EditorMode) string {
	if m, ok := mode.(EditingExisting); ok {
		return m.PostID
	}
	return ""
}
