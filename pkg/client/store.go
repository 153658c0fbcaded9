package client

import (
	"context"
	"errors"
	"sync"

	"afl-predictions-backend/pkg/types"

	"github.com/sirupsen/logrus"
)

// LoginFailedMessage is the only error text the store ever shows
const LoginFailedMessage = "Login failed. Please try again."

// SessionAPI is the subset of Client the store drives
type SessionAPI interface {
	Login(ctx context.Context, form *types.LoginForm) (*types.Player, error)
	Logout(ctx context.Context) error
	CheckSession(ctx context.Context) (*types.SessionStatus, error)
	GetCurrentRound(ctx context.Context) (int, error)
}

// State is a snapshot of the store. CurrentPlayer is nil while logged out.
type State struct {
	CurrentPlayer *types.Player
	CurrentRound  int
	Error         string
	Ready         bool
}

// Store tracks who is logged in on the client side and notifies subscribers of every change
type Store struct {
	api SessionAPI
	log *logrus.Entry

	mu     sync.Mutex
	state  State
	subs   map[int]chan State
	nextID int
}

// NewStore creates an empty, not yet ready store
func NewStore(api SessionAPI) *Store {
	return &Store{
		api:  api,
		log:  logrus.WithField("component", "session_store"),
		subs: make(map[int]chan State),
	}
}

// State returns a copy of the current state
func (s *Store) State() State {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.snapshot()
}

// Subscribe returns a channel that receives a snapshot after every change, and a func that
// stops delivery. Slow readers only ever see the latest snapshot.
func (s *Store) Subscribe() (<-chan State, func()) {
	s.mu.Lock()
	defer s.mu.Unlock()

	id := s.nextID
	s.nextID++
	ch := make(chan State, 1)
	s.subs[id] = ch

	var once sync.Once
	return ch, func() {
		once.Do(func() {
			s.mu.Lock()
			defer s.mu.Unlock()
			delete(s.subs, id)
			close(ch)
		})
	}
}

// Login identifies the player and loads the current round. Any failure leaves the store
// logged out with LoginFailedMessage, except a league with no rounds yet, which logs in at round 0.
func (s *Store) Login(ctx context.Context, name, email string) error {
	s.update(func(st *State) { st.Error = "" })

	player, err := s.api.Login(ctx, &types.LoginForm{Name: name, Email: email})
	if err != nil {
		s.log.WithError(err).Warn("Login failed")
		s.update(func(st *State) {
			st.CurrentPlayer = nil
			st.CurrentRound = 0
			st.Error = LoginFailedMessage
		})
		return err
	}

	round, err := s.api.GetCurrentRound(ctx)
	if err != nil && !errors.Is(err, ErrNotFound) {
		s.log.WithError(err).Warn("Failed to load current round after login")
		s.update(func(st *State) {
			st.CurrentPlayer = nil
			st.CurrentRound = 0
			st.Error = LoginFailedMessage
		})
		return err
	}

	s.update(func(st *State) {
		st.CurrentPlayer = player
		st.CurrentRound = round
	})
	return nil
}

// Logout forgets the player locally and asks the server to drop the session. A failed server
// call is logged; the store is logged out either way.
func (s *Store) Logout(ctx context.Context) {
	s.update(func(st *State) {
		st.CurrentPlayer = nil
		st.CurrentRound = 0
	})

	if err := s.api.Logout(ctx); err != nil {
		s.log.WithError(err).Warn("Server logout failed")
	}
}

// RestoreSession picks up a session left by an earlier login. The session only carries id and
// name, so the restored player has an empty email. Ready is set whatever the outcome.
func (s *Store) RestoreSession(ctx context.Context) {
	defer s.update(func(st *State) { st.Ready = true })

	status, err := s.api.CheckSession(ctx)
	if err != nil {
		s.log.WithError(err).Error("Failed to check session")
		return
	}
	if !status.IsLoggedIn || status.UserID == 0 || status.Username == "" {
		return
	}

	round, err := s.api.GetCurrentRound(ctx)
	if err != nil && !errors.Is(err, ErrNotFound) {
		s.log.WithError(err).Error("Failed to load current round for restored session")
		return
	}

	s.update(func(st *State) {
		st.CurrentPlayer = &types.Player{ID: status.UserID, Name: status.Username}
		st.CurrentRound = round
	})
}

func (s *Store) update(mutate func(*State)) {
	s.mu.Lock()
	defer s.mu.Unlock()

	mutate(&s.state)
	snap := s.snapshot()
	for _, ch := range s.subs {
		// drop an unread snapshot so the newest one fits
		select {
		case <-ch:
		default:
		}
		select {
		case ch <- snap:
		default:
		}
	}
}

func (s *Store) snapshot() State {
	snap := s.state
	if s.state.CurrentPlayer != nil {
		player := *s.state.CurrentPlayer
		snap.CurrentPlayer = &player
	}
	return snap
}
