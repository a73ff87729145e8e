// ABOUTME: Admin JSON API: document reads, command dispatch, YAML export, and editing sessions.
// ABOUTME: Session-scoped dispatch fills in the selected post id for blog SEO commands.
package web

import (
	"encoding/json"
	"io"
	"log"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/brightpath-web/sitewright/content"
	"github.com/brightpath-web/sitewright/export"
)

// maxCommandBody bounds command payloads; documents are small, commands smaller.
const maxCommandBody = 1 << 20

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		log.Printf("component=web action=write_json_failed err=%v", err)
	}
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, map[string]string{"error": msg})
}

// handleGetSite returns the full document snapshot as JSON.
func (s *Server) handleGetSite(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, s.store.Current())
}

// handleDispatchCommand decodes a tagged command and applies it to the store.
func (s *Server) handleDispatchCommand(w http.ResponseWriter, r *http.Request) {
	s.dispatchCommand(w, r, nil)
}

// handleSessionCommand applies a command in the context of an editing session:
// blog SEO commands with no explicit target inherit the session's selected post.
func (s *Server) handleSessionCommand(w http.ResponseWriter, r *http.Request) {
	sess, ok := s.sessions.Get(chi.URLParam(r, "id"))
	if !ok {
		writeError(w, http.StatusNotFound, "session not found")
		return
	}
	s.dispatchCommand(w, r, sess)
}

func (s *Server) dispatchCommand(w http.ResponseWriter, r *http.Request, sess *Session) {
	body, err := io.ReadAll(io.LimitReader(r.Body, maxCommandBody))
	if err != nil {
		writeError(w, http.StatusBadRequest, "read body: "+err.Error())
		return
	}

	cmd, err := content.UnmarshalCommand(body)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	if sess != nil {
		if seoCmd, ok := cmd.(content.UpdateSEOCommand); ok &&
			seoCmd.Section == content.SectionBlogPosts && seoCmd.PostID == "" {
			seoCmd.PostID = content.SelectedPostID(sess.Mode)
			cmd = seoCmd
		}
	}

	_, res, err := s.store.Dispatch(cmd)
	if err != nil {
		commandsTotal.WithLabelValues(cmd.CommandType(), "error").Inc()
		writeError(w, http.StatusUnprocessableEntity, err.Error())
		return
	}

	outcome := "applied"
	if !res.Changed {
		outcome = "noop"
	}
	commandsTotal.WithLabelValues(cmd.CommandType(), outcome).Inc()

	if del, ok := cmd.(content.DeleteBlogPostCommand); ok && res.Changed {
		s.sessions.ClearPostSelection(del.ID)
	}

	writeJSON(w, http.StatusOK, res)
}

// handleExportYAML streams the document as a YAML attachment.
func (s *Server) handleExportYAML(w http.ResponseWriter, r *http.Request) {
	data, err := export.YAML(s.store.Current())
	if err != nil {
		writeError(w, http.StatusInternalServerError, "export: "+err.Error())
		return
	}

	w.Header().Set("Content-Type", "application/x-yaml")
	w.Header().Set("Content-Disposition", `attachment; filename="website.yaml"`)
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(data)
}

// sessionResponse is the wire shape for session create/read responses.
type sessionResponse struct {
	ID   string          `json:"id"`
	Mode json.RawMessage `json:"mode"`
}

func sessionToResponse(sess *Session) (sessionResponse, error) {
	mode, err := MarshalMode(sess.Mode)
	if err != nil {
		return sessionResponse{}, err
	}
	return sessionResponse{ID: sess.ID, Mode: mode}, nil
}

// handleCreateSession creates a new idle editing session.
func (s *Server) handleCreateSession(w http.ResponseWriter, r *http.Request) {
	sess := s.sessions.Create()
	resp, err := sessionToResponse(sess)
	if err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}
	writeJSON(w, http.StatusCreated, resp)
}

// handleGetMode returns a session's current editing mode.
func (s *Server) handleGetMode(w http.ResponseWriter, r *http.Request) {
	sess, ok := s.sessions.Get(chi.URLParam(r, "id"))
	if !ok {
		writeError(w, http.StatusNotFound, "session not found")
		return
	}

	mode, err := MarshalMode(sess.Mode)
	if err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}
	w.Header().Set("Content-Type", "application/json")
	_, _ = w.Write(mode)
}

// handleSetMode replaces a session's editing mode. Entering editing mode
// requires the target post to exist; stale ids are rejected, not stored.
func (s *Server) handleSetMode(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if _, ok := s.sessions.Get(id); !ok {
		writeError(w, http.StatusNotFound, "session not found")
		return
	}

	body, err := io.ReadAll(io.LimitReader(r.Body, maxCommandBody))
	if err != nil {
		writeError(w, http.StatusBadRequest, "read body: "+err.Error())
		return
	}

	mode, err := UnmarshalMode(body)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	if m, ok := mode.(content.EditingExisting); ok {
		if _, found := s.store.Current().PostByID(m.PostID); !found {
			writeError(w, http.StatusNotFound, "post not found: "+m.PostID)
			return
		}
	}

	s.sessions.SetMode(id, mode)

	out, err := MarshalMode(mode)
	if err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}
	w.Header().Set("Content-Type", "application/json")
	_, _ = w.Write(out)
}
