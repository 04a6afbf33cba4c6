package simulator

import "time"

// View is an immutable snapshot of a Session for rendering.
type View struct {
	Elapsed time.Duration

	InputText string
	// InputRevision increases each time the page itself replaced the input
	// (voice transcript, cleared after submit, picked suggestion).
	InputRevision int
	Focused       bool
	IsDragOver    bool

	IsLoading   bool
	IsRecording bool

	IsImageUploading bool
	ShowUploadModal  bool
	UploadStatus     FlowState
	UploadName       string
	UploadSize       int64

	Subtitle string

	Placeholder      string
	PlaceholderIndex int

	LoadingText      string
	LoadingTextIndex int

	ImageLoadingText      string
	ImageLoadingTextIndex int

	Feature      Feature
	FeatureIndex int
	FeatureCount int

	Suggestions []string
	Border      BorderState
}

// HasInput reports whether the submit control is rendered.
func (v View) HasInput() bool {
	return v.InputText != "" || v.IsRecording
}

// SubmitDisabled reports whether the rendered submit control is inert.
func (v View) SubmitDisabled() bool {
	return v.IsLoading
}

// Snapshot captures the current state.
func (s *Session) Snapshot() View {
	return View{
		Elapsed:               s.sched.now,
		InputText:             s.inputText,
		InputRevision:         s.inputRevision,
		Focused:               s.focused,
		IsDragOver:            s.dragOver,
		IsLoading:             s.submit == StatePending,
		IsRecording:           s.voice == StatePending,
		IsImageUploading:      s.upload != StateIdle,
		ShowUploadModal:       s.showModal,
		UploadStatus:          s.upload,
		UploadName:            s.uploadRef.Name,
		UploadSize:            s.uploadRef.Size,
		Subtitle:              s.subtitle,
		Placeholder:           s.placeholders.Current(),
		PlaceholderIndex:      s.placeholders.Index(),
		LoadingText:           s.loadingTexts.Current(),
		LoadingTextIndex:      s.loadingTexts.Index(),
		ImageLoadingText:      s.imageLoadingTexts.Current(),
		ImageLoadingTextIndex: s.imageLoadingTexts.Index(),
		Feature:               s.features.Current(),
		FeatureIndex:          s.features.Index(),
		FeatureCount:          s.features.Len(),
		Suggestions:           s.Suggestions(),
		Border:                s.border.state(s.sched.now),
	}
}
