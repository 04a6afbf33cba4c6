package partials

import (
	"bytes"
	"context"
	"strings"
	"testing"
	"time"

	"legalscholer_app_go/services/i18n"
	"legalscholer_app_go/services/simulator"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	g "maragu.dev/gomponents"
)

func testView() simulator.View {
	return simulator.View{
		Elapsed:      1500 * time.Millisecond,
		Placeholder:  "Search for legal cases...",
		Subtitle:     "Your legal research assistant",
		Feature:      simulator.Feature{Icon: "zap", Title: "Lightning Fast", Description: "Answers in seconds"},
		FeatureIndex: 1,
		FeatureCount: 3,
		Border: simulator.BorderState{
			Position: 12.5,
			Forward:  true,
			Tick:     500 * time.Microsecond,
			Step:     0.5,
		},
	}
}

func render(t *testing.T, n g.Node) string {
	t.Helper()
	var b strings.Builder
	require.NoError(t, n.Render(&b))
	return b.String()
}

func TestSessionState(t *testing.T) {
	out := render(t, SessionState(SessionProps{ID: "abc", View: testView()}, false))

	assert.Contains(t, out, `data-session-id="abc"`)
	assert.Contains(t, out, `data-elapsed="1500"`)
	assert.Contains(t, out, `data-border-position="12.5"`)
	assert.Contains(t, out, `data-border-forward="true"`)
	assert.Contains(t, out, `data-border-tick="0.5"`)
	assert.NotContains(t, out, "hx-swap-oob")
}

func TestSearchControls(t *testing.T) {
	require.NoError(t, i18n.Load())
	ctx := context.Background()

	t.Run("No input hides submit", func(t *testing.T) {
		out := render(t, SearchControls(ctx, SessionProps{ID: "abc", View: testView()}, false))
		assert.NotContains(t, out, `id="submit-button"`)
		assert.Contains(t, out, `hx-post="/htmx/session/abc/voice"`)
		assert.Contains(t, out, `aria-pressed="false"`)
	})

	t.Run("Loading disables submit", func(t *testing.T) {
		v := testView()
		v.InputText = "contract"
		v.IsLoading = true
		out := render(t, SearchControls(ctx, SessionProps{ID: "abc", View: v}, false))
		assert.Contains(t, out, `id="submit-button" class="btn btn-primary btn-icon" disabled`)
	})

	t.Run("Recording shows submit", func(t *testing.T) {
		v := testView()
		v.IsRecording = true
		out := render(t, SearchControls(ctx, SessionProps{ID: "abc", View: v}, false))
		assert.Contains(t, out, `id="submit-button"`)
		assert.Contains(t, out, `class="btn btn-icon recording"`)
	})

	t.Run("Upload in flight", func(t *testing.T) {
		v := testView()
		v.IsImageUploading = true
		out := render(t, SearchControls(ctx, SessionProps{ID: "abc", View: v}, false))
		assert.Contains(t, out, "Processing file...")
		assert.Contains(t, out, `data-action="pick-file" disabled`)
	})
}

func TestSearchFeedback(t *testing.T) {
	require.NoError(t, i18n.Load())

	v := testView()
	v.IsLoading = true
	v.LoadingText = "Analyzing legal databases..."
	v.LoadingTextIndex = 1
	out := render(t, SearchFeedback(context.Background(), SessionProps{ID: "abc", View: v}, true))
	assert.Contains(t, out, `hx-swap-oob="true"`)
	assert.Contains(t, out, `data-index="1">Analyzing legal databases...`)

	v = testView()
	v.Suggestions = []string{`Say "hi"`}
	out = render(t, SearchFeedback(context.Background(), SessionProps{ID: "abc", View: v}, false))
	assert.Contains(t, out, `hx-post="/htmx/session/abc/suggestion"`)
	assert.Contains(t, out, `hx-vals="{&#34;s&#34;:&#34;Say \&#34;hi\&#34;&#34;}"`)
}

func TestFeatureCarousel(t *testing.T) {
	out := render(t, FeatureCarousel(SessionProps{View: testView()}, false))

	assert.Contains(t, out, "Lightning Fast")
	assert.Equal(t, 3, strings.Count(out, `dot"></span>`))
	assert.Contains(t, out, `<span class="active dot"></span>`)
}

func TestUploadModal(t *testing.T) {
	require.NoError(t, i18n.Load())
	ctx := context.Background()

	closed := render(t, UploadModal(ctx, SessionProps{ID: "abc", View: testView()}, false))
	assert.Equal(t, `<div id="upload-modal" class="modal" hidden></div>`, closed)

	v := testView()
	v.ShowUploadModal = true
	v.UploadStatus = simulator.StateProcessing
	v.UploadName = "brief.pdf"
	v.UploadSize = 2048
	v.ImageLoadingText = "Uploading file..."
	processing := render(t, UploadModal(ctx, SessionProps{ID: "abc", View: v}, false))
	assert.Contains(t, processing, "Processing File")
	assert.Contains(t, processing, "Uploading file...")
	assert.Contains(t, processing, "2.00 KB")
	assert.Contains(t, processing, `hx-post="/htmx/session/abc/upload/close"`)

	v.UploadStatus = simulator.StateError
	failed := render(t, UploadModal(ctx, SessionProps{ID: "abc", View: v}, false))
	assert.Contains(t, failed, "Upload Error")
	assert.Contains(t, failed, "Backend is not connected.")
}

func TestDragOverlay(t *testing.T) {
	require.NoError(t, i18n.Load())

	v := testView()
	hidden := render(t, DragOverlay(context.Background(), SessionProps{View: v}, false))
	assert.Contains(t, hidden, `class="drag-overlay" hidden`)

	v.IsDragOver = true
	shown := render(t, DragOverlay(context.Background(), SessionProps{View: v}, false))
	assert.Contains(t, shown, `class="active drag-overlay"><div class="drag-card">`)
}

func TestSessionUpdate(t *testing.T) {
	require.NoError(t, i18n.Load())

	var buf bytes.Buffer
	require.NoError(t, SessionUpdate(SessionProps{ID: "abc", View: testView()}).Render(context.Background(), &buf))

	out := buf.String()
	for _, id := range []string{"session-state", "search-controls", "search-feedback", "feature-carousel", "upload-modal", "drag-overlay"} {
		assert.Contains(t, out, `id="`+id+`"`)
	}
	assert.Equal(t, 6, strings.Count(out, `hx-swap-oob="true"`))
	assert.True(t, strings.HasPrefix(out, `<div id="session-state" hx-swap-oob="true"`))
	assert.True(t, strings.HasSuffix(out, "</div>"))
}

func TestSessionPoll(t *testing.T) {
	out := render(t, SessionPoll("abc"))
	assert.Contains(t, out, `hx-get="/htmx/session/abc"`)
	assert.Contains(t, out, `hx-trigger="every 250ms"`)
}

func TestFormatFileSize(t *testing.T) {
	assert.Equal(t, "512 B", formatFileSize(512))
	assert.Equal(t, "1.50 MB", formatFileSize(1536*1024))
}
