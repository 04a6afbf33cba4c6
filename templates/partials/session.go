package partials

import (
	"context"
	"io"
	"strconv"
	"time"

	"legalscholer_app_go/services/i18n"
	"legalscholer_app_go/services/simulator"
	"legalscholer_app_go/templates/components"

	"github.com/a-h/templ"
	g "maragu.dev/gomponents"
	c "maragu.dev/gomponents/components"
	. "maragu.dev/gomponents/html"
)

// PollInterval is how often an open landing page asks for a fresh snapshot.
const PollInterval = "250ms"

// SessionProps identifies a session and the snapshot to draw.
type SessionProps struct {
	ID   string
	View simulator.View
}

// SessionUpdate renders every live part of the landing page as out-of-band
// elements, so one response refreshes them all whatever triggered it.
func SessionUpdate(p SessionProps) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		return components.Fragment(SessionParts(ctx, p, true)...).Render(ctx, w)
	})
}

// SessionParts lists the live parts in document order.
func SessionParts(ctx context.Context, p SessionProps, oob bool) []g.Node {
	return []g.Node{
		SessionState(p, oob),
		SearchControls(ctx, p, oob),
		SearchFeedback(ctx, p, oob),
		FeatureCarousel(p, oob),
		UploadModal(ctx, p, oob),
		DragOverlay(ctx, p, oob),
	}
}

func oobSwap(oob bool) g.Node {
	return g.If(oob, g.Attr("hx-swap-oob", "true"))
}

func hxPost(id, action string) g.Node {
	return g.Group{
		g.Attr("hx-post", SessionURL(id, action)),
		g.Attr("hx-swap", "none"),
	}
}

// SessionState carries the values app.js applies to elements that are never
// swapped: the input value and placeholder, and the border sweep.
func SessionState(p SessionProps, oob bool) g.Node {
	v := p.View
	return Div(ID("session-state"), oobSwap(oob), g.Attr("hidden"),
		Data("session-id", p.ID),
		Data("elapsed", strconv.FormatInt(v.Elapsed.Milliseconds(), 10)),
		Data("input-revision", strconv.Itoa(v.InputRevision)),
		Data("input-text", v.InputText),
		Data("placeholder", v.Placeholder),
		Data("focused", strconv.FormatBool(v.Focused)),
		Data("loading", strconv.FormatBool(v.IsLoading)),
		Data("drag-over", strconv.FormatBool(v.IsDragOver)),
		Data("border-position", formatFloat(v.Border.Position)),
		Data("border-suspended", strconv.FormatBool(v.Border.Suspended)),
		Data("border-forward", strconv.FormatBool(v.Border.Forward)),
		Data("border-tick", formatFloat(float64(v.Border.Tick)/float64(time.Millisecond))),
		Data("border-step", formatFloat(v.Border.Step)),
	)
}

// SearchControls renders the buttons of the search box. The submit control
// only exists while there is input or a recording.
func SearchControls(ctx context.Context, p SessionProps, oob bool) g.Node {
	v := p.View

	uploadLabel := i18n.T(ctx, "landing.upload_button")
	if v.IsImageUploading {
		uploadLabel = i18n.T(ctx, "landing.upload_button_busy")
	}

	return Div(ID("search-controls"), Class("search-controls"), oobSwap(oob),
		Button(
			Type("button"),
			ID("upload-button"),
			Class("btn btn-ghost"),
			Data("action", "pick-file"),
			g.If(v.IsImageUploading, Disabled()),
			components.Icon("upload", ""),
			Span(Class("btn-label"), g.Text(uploadLabel)),
		),
		Div(Class("search-actions"),
			Button(
				Type("button"),
				ID("voice-button"),
				c.Classes{"btn btn-icon": true, "recording": v.IsRecording},
				hxPost(p.ID, "voice"),
				Aria("pressed", strconv.FormatBool(v.IsRecording)),
				Aria("label", i18n.T(ctx, "landing.voice_button")),
				components.Icon("mic", ""),
			),
			g.If(v.HasInput(), Button(
				Type("submit"),
				ID("submit-button"),
				Class("btn btn-primary btn-icon"),
				g.If(v.SubmitDisabled(), Disabled()),
				Aria("label", i18n.T(ctx, "landing.submit_button")),
				components.Icon("send", ""),
			)),
		),
	)
}

// SearchFeedback renders the loading line and the suggestion list.
func SearchFeedback(ctx context.Context, p SessionProps, oob bool) g.Node {
	v := p.View
	return Div(ID("search-feedback"), Class("search-feedback"), oobSwap(oob), Aria("live", "polite"),
		g.If(v.IsLoading, Div(Class("loading-line"),
			components.Icon("loader", "spin"),
			Span(Class("shiny-text"), Data("index", strconv.Itoa(v.LoadingTextIndex)), g.Text(v.LoadingText)),
		)),
		g.If(len(v.Suggestions) > 0, Ul(Class("suggestions"), Role("listbox"), Aria("label", i18n.T(ctx, "landing.search_label")),
			g.Map(v.Suggestions, func(s string) g.Node {
				return Li(Role("option"),
					Button(
						Type("button"),
						Class("suggestion"),
						hxPost(p.ID, "suggestion"),
						g.Attr("hx-vals", components.JSON(map[string]string{"s": s})),
						components.Icon("search", ""),
						Span(g.Text(s)),
					),
				)
			}),
		)),
	)
}

// FeatureCarousel renders the active feature and one dot per feature.
func FeatureCarousel(p SessionProps, oob bool) g.Node {
	v := p.View
	dots := make([]g.Node, 0, v.FeatureCount)
	for i := 0; i < v.FeatureCount; i++ {
		dots = append(dots, Span(c.Classes{"dot": true, "active": i == v.FeatureIndex}))
	}

	return Div(ID("feature-carousel"), Class("feature-carousel"), oobSwap(oob), Aria("live", "polite"),
		Div(Class("feature-card"), Data("index", strconv.Itoa(v.FeatureIndex)),
			components.Icon(v.Feature.Icon, "feature-icon"),
			Div(
				H3(g.Text(v.Feature.Title)),
				P(g.Text(v.Feature.Description)),
			),
		),
		Div(Class("feature-dots"), Aria("hidden", "true"), g.Group(dots)),
	)
}

// UploadModal renders the mocked document analysis dialog.
func UploadModal(ctx context.Context, p SessionProps, oob bool) g.Node {
	v := p.View
	if !v.ShowUploadModal {
		return Div(ID("upload-modal"), Class("modal"), oobSwap(oob), g.Attr("hidden"))
	}

	var body g.Node
	switch v.UploadStatus {
	case simulator.StateError:
		body = g.Group{
			components.Icon("alert", "modal-icon error"),
			H3(ID("upload-modal-title"), g.Text(i18n.T(ctx, "landing.modal_error"))),
			P(Class("modal-error"), g.Text(i18n.T(ctx, "landing.modal_backend"))),
			P(Class("muted"), g.Text(i18n.T(ctx, "landing.modal_retry"))),
		}
	default:
		body = g.Group{
			components.Icon("loader", "modal-icon spin"),
			H3(ID("upload-modal-title"), g.Text(i18n.T(ctx, "landing.modal_processing"))),
			P(Class("shiny-text"), Data("index", strconv.Itoa(v.ImageLoadingTextIndex)), g.Text(v.ImageLoadingText)),
			P(Class("muted"), g.Text(i18n.T(ctx, "landing.modal_wait"))),
		}
	}

	return Div(ID("upload-modal"), Class("modal open"), oobSwap(oob),
		Role("dialog"), Aria("modal", "true"), Aria("labelledby", "upload-modal-title"),
		Div(Class("modal-card"), Data("status", string(v.UploadStatus)),
			Button(
				Type("button"),
				Class("modal-close"),
				hxPost(p.ID, "upload/close"),
				Aria("label", i18n.T(ctx, "landing.close")),
				components.Icon("x", ""),
			),
			body,
			g.If(v.UploadName != "", P(Class("upload-file"),
				components.Icon("file", ""),
				Span(g.Text(v.UploadName)),
				Span(Class("muted"), g.Text(formatFileSize(v.UploadSize))),
			)),
		),
	)
}

// DragOverlay renders the drop zone hint shown while a file is dragged over the page.
func DragOverlay(ctx context.Context, p SessionProps, oob bool) g.Node {
	return Div(ID("drag-overlay"), c.Classes{"drag-overlay": true, "active": p.View.IsDragOver}, oobSwap(oob),
		g.If(!p.View.IsDragOver, g.Attr("hidden")),
		Div(Class("drag-card"),
			components.Icon("upload", "drag-icon"),
			P(Class("drag-title"), g.Text(i18n.T(ctx, "landing.drop_title"))),
			P(Class("muted"), g.Text(i18n.T(ctx, "landing.drop_body"))),
		),
	)
}

// SessionPoll keeps the session moving while the page is open.
func SessionPoll(id string) g.Node {
	return Div(ID("session-poll"), g.Attr("hidden"),
		g.Attr("hx-get", SessionURL(id, "")),
		g.Attr("hx-trigger", "every "+PollInterval),
		g.Attr("hx-swap", "none"),
	)
}
