package server

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strings"

	"go.uber.org/zap"
)

const initialGreeting = "🤖 Hello! I am your AI assistant. Please provide your details to begin."

// indexPage is the template data for the Q&A form page.
type indexPage struct {
	Greeting string
	Name     string
	DOB      string
	Question string
	Hindi    string
	English  string
	Answered bool
}

// handleIndex renders the Q&A form. On a POST carrying name, date of birth,
// and a question it runs the QA engine and renders the answer; any missing
// field falls back to the initial greeting only.
func (s *Server) handleIndex(w http.ResponseWriter, r *http.Request) {
	page := indexPage{Greeting: initialGreeting}

	if r.Method == http.MethodPost {
		if err := r.ParseForm(); err != nil {
			http.Error(w, "invalid form", http.StatusBadRequest)
			return
		}
		name := strings.TrimSpace(r.FormValue("name"))
		dob := strings.TrimSpace(r.FormValue("dob"))
		question := strings.TrimSpace(r.FormValue("question"))
		if name != "" && dob != "" && question != "" {
			answer, err := s.engine.Ask(r.Context(), question)
			if err != nil {
				s.logger.Error("question answering failed", zap.Error(err))
				http.Error(w, "Internal Server Error", http.StatusInternalServerError)
				return
			}
			page = indexPage{
				Greeting: fmt.Sprintf("🤖 Welcome, %s! 🎉 I am here to assist you with queries from my trained knowledge.", name),
				Name:     name,
				DOB:      dob,
				Question: question,
				Hindi:    answer.Hindi,
				English:  answer.English,
				Answered: true,
			}
		}
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := s.tmpl.ExecuteTemplate(w, "index.html", page); err != nil {
		s.logger.Error("render page failed", zap.Error(err))
	}
}

// handleExit returns a farewell message for the given name as JSON.
func (s *Server) handleExit(w http.ResponseWriter, r *http.Request) {
	name := r.URL.Query().Get("name")
	if name == "" {
		name = "friend"
	}
	farewell := fmt.Sprintf("👋 Bye, %s! Have a great day! 😊", name)
	s.respondJSON(w, http.StatusOK, map[string]string{"farewell": farewell})
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	s.respondJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func (s *Server) respondJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(data)
}
