// Package simulator drives the mocked asynchronous feedback of the landing
// page search box: query submission, voice capture, file upload, and the
// cosmetic rotations around them.
//
// A Session is a finite state machine over a virtual clock. User gestures are
// applied through its methods; time-triggered transitions only happen inside
// Advance, which fires due timers in due order. A Session is not safe for
// concurrent use; Registry serialises access for the HTTP layer.
package simulator

import (
	"math/rand/v2"
	"strings"
	"time"
)

// FlowState is the state of one mocked flow.
type FlowState string

const (
	StateIdle       FlowState = "idle"
	StatePending    FlowState = "pending"
	StateProcessing FlowState = "processing"
	StateError      FlowState = "error"
)

// Flow names one of the mocked asynchronous interactions.
type Flow string

const (
	FlowSubmit Flow = "submit"
	FlowVoice  Flow = "voice"
	FlowUpload Flow = "upload"
)

// Transition records one state change of a flow.
type Transition struct {
	Flow Flow
	From FlowState
	To   FlowState
	At   time.Duration
	// Manual is true when a user gesture caused the change rather than a timer.
	Manual bool
}

// FileRef is the opaque reference to a picked or dropped file. Only its
// presence matters; the content is never read.
type FileRef struct {
	Name string
	Size int64
}

// Option customises a Session.
type Option func(*options)

type options struct {
	intn func(n int) int
}

// WithRand sets the source used to pick the subtitle at mount.
// intn must return a value in [0, n).
func WithRand(intn func(n int) int) Option {
	return func(o *options) {
		o.intn = intn
	}
}

// Session is the in-memory state of one landing page view.
type Session struct {
	cfg         Config
	sched       *scheduler
	transitions []Transition
	unmounted   bool

	inputText     string
	inputRevision int
	focused       bool
	dragOver      bool

	submit      FlowState
	submitTimer timerID

	voice      FlowState
	voiceTimer timerID

	upload      FlowState
	uploadTimer timerID
	showModal   bool
	uploadRef   FileRef

	subtitle          string
	placeholders      Rotation[string]
	loadingTexts      Rotation[string]
	imageLoadingTexts Rotation[string]
	features          Rotation[Feature]

	placeholderTimer  timerID
	loadingTimer      timerID
	imageLoadingTimer timerID
	featureTimer      timerID

	border borderSweep
}

// New mounts a session at virtual time zero.
func New(cfg Config, opts ...Option) (*Session, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	o := options{intn: rand.IntN}
	for _, opt := range opts {
		opt(&o)
	}

	s := &Session{
		cfg:               cfg,
		sched:             newScheduler(),
		submit:            StateIdle,
		voice:             StateIdle,
		upload:            StateIdle,
		placeholders:      NewRotation(cfg.Placeholders),
		loadingTexts:      NewRotation(cfg.LoadingTexts),
		imageLoadingTexts: NewRotation(cfg.ImageLoadingTexts),
		features:          NewRotation(cfg.Features),
		border:            newBorderSweep(cfg.dur(cfg.BorderTick), cfg.BorderStep),
	}

	i := o.intn(len(cfg.Subtitles))
	if i < 0 || i >= len(cfg.Subtitles) {
		i = 0
	}
	s.subtitle = cfg.Subtitles[i]

	// the feature carousel rotates for the whole life of the page
	s.featureTimer = s.sched.every(cfg.dur(cfg.FeatureInterval), func() {
		s.features.Advance()
	})
	s.syncRotations()

	return s, nil
}

// SetInput replaces the search box contents with what the user typed.
func (s *Session) SetInput(text string) {
	if s.unmounted {
		return
	}
	s.inputText = text
	s.syncRotations()
}

// Focus suspends the border sweep and the placeholder rotation.
func (s *Session) Focus() {
	if s.unmounted || s.focused {
		return
	}
	s.focused = true
	s.border.suspend()
	s.syncRotations()
}

// Blur restarts the border sweep from the left edge.
func (s *Session) Blur() {
	if s.unmounted || !s.focused {
		return
	}
	s.focused = false
	s.border.resume(s.sched.now)
	s.syncRotations()
}

// SubmitQuery starts the mocked search. It needs non-empty text or a voice
// capture in flight. A submission while one is pending is ignored, so the
// pending completion time never moves. Reports whether a submission started.
func (s *Session) SubmitQuery(text string) bool {
	if s.unmounted || s.submit == StatePending {
		return false
	}
	if text == "" && s.voice != StatePending {
		return false
	}

	if text != "" {
		s.inputText = text
	}
	s.setFlow(FlowSubmit, &s.submit, StatePending, true)
	s.submitTimer = s.sched.after(s.cfg.dur(s.cfg.SubmitDelay), s.completeSubmit)
	s.syncRotations()
	return true
}

func (s *Session) completeSubmit() {
	s.submitTimer = 0
	s.setFlow(FlowSubmit, &s.submit, StateIdle, false)
	s.replaceInput("")
	s.syncRotations()
}

// StartVoiceCapture starts the mocked recording. Ignored while already recording.
func (s *Session) StartVoiceCapture() bool {
	if s.unmounted || s.voice == StatePending {
		return false
	}

	s.setFlow(FlowVoice, &s.voice, StatePending, true)
	s.voiceTimer = s.sched.after(s.cfg.dur(s.cfg.VoiceDelay), s.completeVoice)
	return true
}

func (s *Session) completeVoice() {
	s.voiceTimer = 0
	s.setFlow(FlowVoice, &s.voice, StateIdle, false)
	s.replaceInput(s.cfg.VoiceTranscript)
	s.syncRotations()
}

// StartFileUpload opens the upload modal and runs the mocked processing,
// which always ends in the error state. Ignored while an upload is in flight
// or when no file was given.
func (s *Session) StartFileUpload(ref FileRef) bool {
	if s.unmounted || s.upload != StateIdle || ref.Name == "" {
		return false
	}

	s.uploadRef = ref
	s.showModal = true
	s.dragOver = false
	s.setFlow(FlowUpload, &s.upload, StateProcessing, true)
	s.uploadTimer = s.sched.after(s.cfg.dur(s.cfg.UploadProcessingDelay), s.failUpload)
	s.syncRotations()
	return true
}

func (s *Session) failUpload() {
	s.setFlow(FlowUpload, &s.upload, StateError, false)
	s.uploadTimer = s.sched.after(s.cfg.dur(s.cfg.UploadErrorDelay), s.finishUpload)
}

func (s *Session) finishUpload() {
	s.uploadTimer = 0
	s.showModal = false
	s.uploadRef = FileRef{}
	s.setFlow(FlowUpload, &s.upload, StateIdle, false)
	s.syncRotations()
}

// CloseUploadModal hides the modal and forces the upload flow back to idle.
// Pending upload timers are cancelled.
func (s *Session) CloseUploadModal() bool {
	if s.unmounted || (s.upload == StateIdle && !s.showModal) {
		return false
	}

	s.sched.cancel(s.uploadTimer)
	s.uploadTimer = 0
	s.showModal = false
	s.uploadRef = FileRef{}
	s.setFlow(FlowUpload, &s.upload, StateIdle, true)
	s.syncRotations()
	return true
}

// DragEnter shows the drop overlay.
func (s *Session) DragEnter() {
	if s.unmounted {
		return
	}
	s.dragOver = true
}

// DragLeave hides the drop overlay.
func (s *Session) DragLeave() {
	if s.unmounted {
		return
	}
	s.dragOver = false
}

// SelectSuggestion copies one of the configured suggestions into the input.
func (s *Session) SelectSuggestion(suggestion string) bool {
	if s.unmounted {
		return false
	}
	for _, candidate := range s.cfg.Suggestions {
		if candidate == suggestion {
			s.replaceInput(candidate)
			s.syncRotations()
			return true
		}
	}
	return false
}

// Suggestions returns the configured suggestions containing the input,
// ignoring case. Nothing is suggested for an empty input or while loading.
func (s *Session) Suggestions() []string {
	if s.inputText == "" || s.submit == StatePending {
		return nil
	}

	needle := strings.ToLower(s.inputText)
	var out []string
	for _, candidate := range s.cfg.Suggestions {
		if strings.Contains(strings.ToLower(candidate), needle) {
			out = append(out, candidate)
		}
	}
	return out
}

// Advance moves virtual time forward by d and applies every transition due.
func (s *Session) Advance(d time.Duration) {
	if s.unmounted || d <= 0 {
		return
	}
	s.sched.advance(d)
}

// AdvanceTo moves virtual time to the absolute elapsed time t.
// Times in the past are ignored.
func (s *Session) AdvanceTo(t time.Duration) {
	s.Advance(t - s.sched.now)
}

// Elapsed is the virtual time since mount.
func (s *Session) Elapsed() time.Duration {
	return s.sched.now
}

// PendingTimers counts scheduled callbacks, rotations included.
func (s *Session) PendingTimers() int {
	return s.sched.pending()
}

// Unmounted reports whether Unmount was called.
func (s *Session) Unmounted() bool {
	return s.unmounted
}

// Unmount cancels every pending timer and resets every field to its value
// before mount; the subtitle is empty again. Further gestures and Advance
// calls have no effect.
func (s *Session) Unmount() {
	if s.unmounted {
		return
	}
	s.sched.reset()
	s.unmounted = true

	s.inputText = ""
	s.inputRevision = 0
	s.subtitle = ""
	s.focused = false
	s.dragOver = false
	s.border = newBorderSweep(s.cfg.dur(s.cfg.BorderTick), s.cfg.BorderStep)
	s.submit, s.submitTimer = StateIdle, 0
	s.voice, s.voiceTimer = StateIdle, 0
	s.upload, s.uploadTimer = StateIdle, 0
	s.showModal = false
	s.uploadRef = FileRef{}
	s.placeholders.Reset()
	s.loadingTexts.Reset()
	s.imageLoadingTexts.Reset()
	s.features.Reset()
	s.placeholderTimer, s.loadingTimer, s.imageLoadingTimer, s.featureTimer = 0, 0, 0, 0
	s.transitions = nil
}

// Transitions returns the flow transitions recorded since the last call.
func (s *Session) Transitions() []Transition {
	out := s.transitions
	s.transitions = nil
	return out
}

func (s *Session) setFlow(flow Flow, state *FlowState, to FlowState, manual bool) {
	from := *state
	*state = to
	if from == to {
		return
	}
	s.transitions = append(s.transitions, Transition{
		Flow:   flow,
		From:   from,
		To:     to,
		At:     s.sched.now,
		Manual: manual,
	})
}

// replaceInput changes the input on the page's behalf; the revision tells the
// view to overwrite what the browser shows.
func (s *Session) replaceInput(text string) {
	s.inputText = text
	s.inputRevision++
}

// syncRotations starts or stops each gated rotation. A rotation that is
// reopened starts a fresh interval.
func (s *Session) syncRotations() {
	s.placeholderTimer = s.gate(s.placeholderTimer, !s.focused && s.inputText == "",
		s.cfg.PlaceholderInterval, func() { s.placeholders.Advance() })
	s.loadingTimer = s.gate(s.loadingTimer, s.submit == StatePending,
		s.cfg.LoadingTextInterval, func() { s.loadingTexts.Advance() })
	s.imageLoadingTimer = s.gate(s.imageLoadingTimer, s.upload != StateIdle,
		s.cfg.ImageLoadingTextInterval, func() { s.imageLoadingTexts.Advance() })
}

func (s *Session) gate(id timerID, open bool, interval Units, tick func()) timerID {
	switch {
	case open && id == 0:
		return s.sched.every(s.cfg.dur(interval), tick)
	case !open && id != 0:
		s.sched.cancel(id)
		return 0
	default:
		return id
	}
}
