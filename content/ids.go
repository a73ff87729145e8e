// ABOUTME: Entity id generation for services and blog posts using monotonic ULIDs.
// ABOUTME: Centralizes the entropy source so ids are time-ordered and unique within a session.
package content

import (
	"crypto/rand"
	"strings"
	"sync"

	"github.com/oklog/ulid/v2"
)

var (
	idMu      sync.Mutex
	idEntropy = ulid.Monotonic(rand.Reader, 0)
)

// newULID generates a ULID with monotonic entropy: ids created within the
// same session sort strictly by creation order.
func newULID() ulid.ULID {
	idMu.Lock()
	defer idMu.Unlock()
	return ulid.MustNew(ulid.Now(), idEntropy)
}

// NewServiceID returns a fresh unique id for a service list entry.
func NewServiceID() string {
	return "service-" + strings.ToLower(newULID().String())
}

// NewBlogPostID returns a fresh unique id for a blog post.
func NewBlogPostID() string {
	return "blog-" + strings.ToLower(newULID().String())
}
