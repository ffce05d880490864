package bot

import (
	"sync"

	"github.com/Roups939/HotSecjobBot/internal/store"
)

// state is the FSM position of one dialog.
type state int

const (
	stateModeSelect state = iota
	stateVacancySelect          // mode 1: pick profession
	stateRegionSelect           // mode 1: pick region
	stateSalaryEntry            // mode 1: contribute own salary range
	stateExperienceEntry        // mode 1: contribute own experience bucket
	stateVacancyForSalarySelect // mode 2: pick profession
	stateExperienceSelect       // mode 2: pick experience bucket
)

// session is the per-user dialog state: the FSM position plus whatever the
// user has selected so far. Owned by one chat id, mutated only by that
// dialog's transitions, dropped at the terminal state or on /cancel.
type session struct {
	state      state
	profession string
	region     string
	regionID   int
	experience string
	salary     *store.Salary
}

// sessions is the process-wide session map keyed by chat id.
type sessions struct {
	mu sync.Mutex
	m  map[int64]*session
}

func newSessions() *sessions {
	return &sessions{m: make(map[int64]*session)}
}

func (s *sessions) get(chatID int64) (*session, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	sess, ok := s.m[chatID]
	return sess, ok
}

// start replaces any in-flight dialog with a fresh one.
func (s *sessions) start(chatID int64) *session {
	s.mu.Lock()
	defer s.mu.Unlock()
	sess := &session{state: stateModeSelect}
	s.m[chatID] = sess
	return sess
}

func (s *sessions) drop(chatID int64) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.m, chatID)
}
