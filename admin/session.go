// Package admin implements the operator's edit workflow: an access-code gate
// followed by a single-modal editor over projects, resources and the profile.
package admin

import (
	"context"
	"sync"
	"time"

	"github.com/eduproject/catalog/errs"
	"github.com/eduproject/catalog/models"
	"github.com/pkg/errors"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

type State int

const (
	StateLoggedOut State = iota
	StateIdle
	StateEditing
	StateSyncing
)

func (s State) String() string {
	switch s {
	case StateIdle:
		return "idle"
	case StateEditing:
		return "editing"
	case StateSyncing:
		return "syncing"
	}
	return "logged out"
}

// ConnStatus reflects whether the most recent fetch succeeded.
type ConnStatus string

const (
	StatusUnknown      ConnStatus = "unknown"
	StatusConnected    ConnStatus = "connected"
	StatusDisconnected ConnStatus = "disconnected"
)

// ErrInvalidState is returned when an operation is not allowed in the
// session's current state.
var ErrInvalidState = errors.New("operation not allowed in current state")

const (
	msgProjectSaved   = "Proyek tersimpan ke Cloud!"
	msgResourceSaved  = "Resource tersimpan ke Cloud!"
	msgProjectDeleted = "Proyek dihapus dari Cloud."
	msgResourceGone   = "Resource dihapus dari Cloud."
	msgProfileSaved   = "Profil tersinkronisasi ke Cloud!"
	msgRefreshed      = "Data dimuat ulang."

	promptDeleteProject  = "Hapus proyek ini dari cloud?"
	promptDeleteResource = "Hapus resource ini dari cloud?"
)

// View is a copy of everything the admin screen shows.
type View struct {
	State      State
	LoginError string
	Draft      *Draft
	Projects   []models.Project
	Resources  []models.DownloadItem
	Profile    models.DeveloperProfile
	Status     ConnStatus
	// Toast is the notification overlay, nil once it has expired.
	Toast *Toast
}

// Session is one operator's admin workflow. All methods are safe for
// concurrent use, but only one operation runs at a time: while a remote
// call is in flight the session is Syncing and other operations fail with
// ErrInvalidState.
type Session struct {
	gate      Gate
	repos     Repositories
	notifier  Notifier
	confirmer Confirmer
	now       func() time.Time
	toastTTL  time.Duration
	logger    zerolog.Logger

	mu         sync.Mutex
	state      State
	loginError string
	draft      *Draft
	data       Snapshot
	status     ConnStatus
	lastToast  *Toast
}

type Option func(*Session)

func WithNotifier(n Notifier) Option {
	return func(s *Session) {
		s.notifier = n
	}
}

func WithConfirmer(c Confirmer) Option {
	return func(s *Session) {
		s.confirmer = c
	}
}

func WithClock(now func() time.Time) Option {
	return func(s *Session) {
		s.now = now
	}
}

func WithToastTTL(ttl time.Duration) Option {
	return func(s *Session) {
		s.toastTTL = ttl
	}
}

func NewSession(gate Gate, repos Repositories, opts ...Option) *Session {
	s := &Session{
		gate:      gate,
		repos:     repos,
		notifier:  LogNotifier{},
		confirmer: declineAll{},
		now:       time.Now,
		toastTTL:  ToastTTL,
		logger:    log.With().Str("component", "admin-session").Logger(),
		state:     StateLoggedOut,
		status:    StatusUnknown,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Login checks code against the gate. A wrong code keeps the session logged
// out and records the inline error; the right one moves to Idle and runs the
// initial load.
func (s *Session) Login(ctx context.Context, code string) error {
	s.mu.Lock()
	if s.state != StateLoggedOut {
		s.mu.Unlock()
		return nil
	}
	if !s.gate.Check(code) {
		apiErr := errs.NewInvalidAccessCodeError()
		s.loginError = apiErr.Details
		s.mu.Unlock()
		s.logger.Warn().Msg("rejected admin access code")
		return apiErr
	}
	s.loginError = ""
	s.state = StateIdle
	s.mu.Unlock()

	s.logger.Info().Msg("admin logged in")
	return s.Refresh(ctx)
}

// Logout drops the session's data and any open draft.
func (s *Session) Logout() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.state = StateLoggedOut
	s.loginError = ""
	s.draft = nil
	s.data = Snapshot{}
	s.status = StatusUnknown
}

// Refresh re-fetches every collection. On failure the last successful data
// is kept and the status turns disconnected.
func (s *Session) Refresh(ctx context.Context) error {
	if err := s.begin(StateIdle); err != nil {
		return err
	}
	err := s.reload(ctx)
	s.finish(StateIdle, nil)

	if err != nil {
		s.notify(ToastError, err.Error())
		return err
	}
	s.notify(ToastInfo, msgRefreshed)
	return nil
}

// NewProject opens the modal on a fresh project placed after the current ones.
func (s *Session) NewProject() (Draft, error) {
	return s.open(func(data Snapshot) (Draft, error) {
		return newProjectDraft(models.NewProject(len(data.Projects))), nil
	})
}

// EditProject opens the modal on a copy of an existing project.
func (s *Session) EditProject(id string) (Draft, error) {
	return s.open(func(data Snapshot) (Draft, error) {
		for _, p := range data.Projects {
			if p.ID == id {
				return newProjectDraft(p), nil
			}
		}
		return Draft{}, errs.NewNotFoundError("project " + id)
	})
}

func (s *Session) NewResource() (Draft, error) {
	return s.open(func(data Snapshot) (Draft, error) {
		return newResourceDraft(models.NewDownloadItem(len(data.Resources))), nil
	})
}

func (s *Session) EditResource(id string) (Draft, error) {
	return s.open(func(data Snapshot) (Draft, error) {
		for _, r := range data.Resources {
			if r.ID == id {
				return newResourceDraft(r), nil
			}
		}
		return Draft{}, errs.NewNotFoundError("resource " + id)
	})
}

// UpdateDraft replaces the open draft with the operator's latest input.
func (s *Session) UpdateDraft(next Draft) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.state != StateEditing || s.draft == nil {
		return s.invalidState("update draft")
	}
	d, err := s.draft.replace(next)
	if err != nil {
		return err
	}
	s.draft = &d
	return nil
}

// Cancel closes the modal and discards the draft.
func (s *Session) Cancel() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.state == StateEditing {
		s.state = StateIdle
		s.draft = nil
	}
}

// Submit validates the open draft and writes it. On success the data is
// re-fetched, the modal closed and a success toast emitted, in that order.
// On failure the modal stays open with the draft untouched.
func (s *Session) Submit(ctx context.Context) error {
	s.mu.Lock()
	if s.state != StateEditing || s.draft == nil {
		defer s.mu.Unlock()
		return s.invalidState("submit")
	}
	draft := *s.draft
	if err := draft.Validate(); err != nil {
		s.mu.Unlock()
		s.notify(ToastError, err.Error())
		return err
	}
	s.state = StateSyncing
	s.mu.Unlock()

	var msg string
	var err error
	switch draft.Kind {
	case DraftResource:
		msg = msgResourceSaved
		err = s.repos.Resources.Upsert(ctx, &draft.Resource)
	default:
		msg = msgProjectSaved
		err = s.repos.Projects.Upsert(ctx, &draft.Project)
	}
	if err != nil {
		s.finish(StateEditing, nil)
		s.logger.Error().Err(err).Str("kind", draft.Kind.String()).Msg("error saving draft")
		s.notify(ToastError, err.Error())
		return err
	}

	if err := s.reload(ctx); err != nil {
		s.logger.Error().Err(err).Msg("error re-fetching after save")
	}
	s.finish(StateIdle, func() { s.draft = nil })
	s.notify(ToastSuccess, msg)
	return nil
}

// DeleteProject asks for confirmation once and deletes the project only when
// the operator agrees. Declining changes nothing.
func (s *Session) DeleteProject(ctx context.Context, id string) error {
	return s.deleteWith(ctx, promptDeleteProject, msgProjectDeleted, func(ctx context.Context) error {
		return s.repos.Projects.Delete(ctx, id)
	})
}

func (s *Session) DeleteResource(ctx context.Context, id string) error {
	return s.deleteWith(ctx, promptDeleteResource, msgResourceGone, func(ctx context.Context) error {
		return s.repos.Resources.Delete(ctx, id)
	})
}

func (s *Session) deleteWith(ctx context.Context, prompt, done string, del func(context.Context) error) error {
	s.mu.Lock()
	if s.state != StateIdle {
		defer s.mu.Unlock()
		return s.invalidState("delete")
	}
	s.mu.Unlock()

	if !s.confirmer.Confirm(ctx, prompt) {
		return nil
	}

	if err := s.begin(StateIdle); err != nil {
		return err
	}
	if err := del(ctx); err != nil {
		s.finish(StateIdle, nil)
		s.logger.Error().Err(err).Msg("error deleting")
		s.notify(ToastError, err.Error())
		return err
	}
	if err := s.reload(ctx); err != nil {
		s.logger.Error().Err(err).Msg("error re-fetching after delete")
	}
	s.finish(StateIdle, nil)
	s.notify(ToastSuccess, done)
	return nil
}

// SaveProfile replaces the stored profile with p.
func (s *Session) SaveProfile(ctx context.Context, p models.DeveloperProfile) error {
	return s.saveProfile(ctx, func(models.DeveloperProfile) (models.DeveloperProfile, error) {
		return p, nil
	})
}

// UpdateLayout merges patch into the current layout settings and saves the
// profile. Fields the patch leaves unset keep their current value.
func (s *Session) UpdateLayout(ctx context.Context, patch models.LayoutPatch) error {
	return s.saveProfile(ctx, func(p models.DeveloperProfile) (models.DeveloperProfile, error) {
		if patch.Preset != nil && !patch.Preset.Valid() {
			return p, errs.NewInvalidFieldError("preset", "unknown layout preset "+string(*patch.Preset))
		}
		p.LayoutSettings = p.LayoutSettings.Merge(patch)
		return p, nil
	})
}

func (s *Session) UpdateTheme(ctx context.Context, patch models.ThemePatch) error {
	return s.saveProfile(ctx, func(p models.DeveloperProfile) (models.DeveloperProfile, error) {
		p.ThemeSettings = p.ThemeSettings.Merge(patch)
		return p, nil
	})
}

// ApplyPreset switches the layout to a named preset and saves it.
func (s *Session) ApplyPreset(ctx context.Context, preset models.LayoutPreset) error {
	return s.UpdateLayout(ctx, models.LayoutPatch{Preset: &preset})
}

// saveProfile applies edit to the current profile and writes it. When the
// last load failed the session's copy is stale or empty, so the stored
// profile is fetched first and edited instead.
func (s *Session) saveProfile(ctx context.Context, edit func(models.DeveloperProfile) (models.DeveloperProfile, error)) error {
	s.mu.Lock()
	if s.state != StateIdle {
		defer s.mu.Unlock()
		return s.invalidState("save profile")
	}
	current, loaded := s.data.Profile, s.status == StatusConnected
	s.state = StateSyncing
	s.mu.Unlock()

	if !loaded {
		fetched, err := s.repos.Profile.GetOrCreateDefault(ctx)
		if err != nil {
			s.finish(StateIdle, nil)
			s.logger.Error().Err(err).Msg("error fetching profile before save")
			s.notify(ToastError, err.Error())
			return err
		}
		current = fetched
	}

	next, err := edit(current)
	if err != nil {
		s.finish(StateIdle, nil)
		s.notify(ToastError, err.Error())
		return err
	}

	if err := s.repos.Profile.Save(ctx, &next); err != nil {
		s.finish(StateIdle, nil)
		s.logger.Error().Err(err).Msg("error saving profile")
		s.notify(ToastError, err.Error())
		return err
	}
	if err := s.reload(ctx); err != nil {
		s.logger.Error().Err(err).Msg("error re-fetching after profile save")
		s.finish(StateIdle, func() { s.data.Profile = next })
	} else {
		s.finish(StateIdle, nil)
	}
	s.notify(ToastSuccess, msgProfileSaved)
	return nil
}

// View returns a snapshot of the session for rendering.
func (s *Session) View() View {
	s.mu.Lock()
	defer s.mu.Unlock()

	v := View{
		State:      s.state,
		LoginError: s.loginError,
		Projects:   append([]models.Project(nil), s.data.Projects...),
		Resources:  append([]models.DownloadItem(nil), s.data.Resources...),
		Profile:    s.data.Profile,
		Status:     s.status,
	}
	if s.draft != nil {
		d := *s.draft
		v.Draft = &d
	}
	if s.lastToast != nil && s.lastToast.Visible(s.now(), s.toastTTL) {
		t := *s.lastToast
		v.Toast = &t
	}
	return v
}

func (s *Session) open(build func(Snapshot) (Draft, error)) (Draft, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.state != StateIdle {
		return Draft{}, s.invalidState("open editor")
	}
	d, err := build(s.data)
	if err != nil {
		return Draft{}, err
	}
	s.draft = &d
	s.state = StateEditing
	return d, nil
}

// begin moves the session to Syncing from the given state.
func (s *Session) begin(from State) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.state != from {
		return s.invalidState("sync")
	}
	s.state = StateSyncing
	return nil
}

// finish leaves Syncing for to, running apply under the lock first.
func (s *Session) finish(to State, apply func()) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if apply != nil {
		apply()
	}
	if s.state == StateSyncing {
		s.state = to
	}
}

func (s *Session) reload(ctx context.Context) error {
	snap, err := Load(ctx, s.repos)

	s.mu.Lock()
	defer s.mu.Unlock()

	if err != nil {
		s.status = StatusDisconnected
		s.logger.Error().Err(err).Msg("error loading admin data")
		return err
	}
	s.data = snap
	s.status = StatusConnected
	return nil
}

func (s *Session) notify(level ToastLevel, msg string) {
	t := Toast{Level: level, Message: msg, At: s.now()}

	s.mu.Lock()
	s.lastToast = &t
	s.mu.Unlock()

	s.notifier.Notify(t)
}

// invalidState must be called with the lock held.
func (s *Session) invalidState(op string) error {
	return errors.Wrapf(ErrInvalidState, "cannot %s while %s", op, s.state)
}
