package tui

import (
	"context"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/crosspost-labs/crosspost-cli/internal/adapters/driving/tui/messages"
	"github.com/crosspost-labs/crosspost-cli/internal/adapters/driving/tui/styles"
	"github.com/crosspost-labs/crosspost-cli/internal/core/domain"
)

// App is the cross-posting wizard following the Elm architecture.
// It implements tea.Model for use with Bubbletea.
type App struct {
	// ports provides access to core services via driving ports.
	ports *Ports

	// ctx is the context for cancellation.
	ctx context.Context

	// styles holds the TUI styles.
	styles *styles.Styles

	// step tracks the current wizard step.
	step messages.Step

	// pathInput takes the video file path on the upload step.
	pathInput textinput.Model

	// captionInput takes the shared caption on the edit step.
	captionInput textinput.Model

	// spinner animates while importing or publishing.
	spinner spinner.Model

	// busy is true while a command is in flight.
	busy bool

	// video is the imported clip, set after the upload step.
	video *domain.Video

	// platforms is the platform list with connection status.
	platforms []domain.Platform

	// selected tracks which platforms are chosen for the cross-post.
	selected map[domain.PlatformID]bool

	// captions holds per-platform generated captions, keyed by platform.
	captions map[domain.PlatformID]string

	// cursor is the highlighted platform row on the edit step.
	cursor int

	// editingCaption is true while the caption input has focus.
	editingCaption bool

	// results holds the delivery results on the done step.
	results []domain.PostResult

	// err holds the last error that occurred.
	err error

	// width and height are terminal dimensions.
	width  int
	height int
}

// Ensure App implements tea.Model.
var _ tea.Model = (*App)(nil)

// NewApp creates a new wizard with the given ports.
func NewApp(ports *Ports) (*App, error) {
	if err := ports.Validate(); err != nil {
		return nil, fmt.Errorf("creating app: %w", err)
	}

	s := styles.DefaultStyles()

	pathInput := textinput.New()
	pathInput.Placeholder = "Path to video (mp4, mov or webm)..."
	pathInput.Focus()
	pathInput.CharLimit = 512
	pathInput.Width = 50

	captionInput := textinput.New()
	captionInput.Placeholder = "Write a caption..."
	captionInput.CharLimit = 500
	captionInput.Width = 50

	sp := spinner.New()
	sp.Spinner = spinner.Dot

	return &App{
		ports:        ports,
		ctx:          context.Background(),
		styles:       s,
		step:         messages.StepUpload,
		pathInput:    pathInput,
		captionInput: captionInput,
		spinner:      sp,
		selected:     map[domain.PlatformID]bool{},
		captions:     map[domain.PlatformID]string{},
	}, nil
}

// WithContext sets the context for the app.
func (a *App) WithContext(ctx context.Context) *App {
	a.ctx = ctx
	return a
}

// Init implements tea.Model.
func (a *App) Init() tea.Cmd {
	return tea.Batch(textinput.Blink, a.loadPlatforms())
}

// Update implements tea.Model.
func (a *App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		a.width = msg.Width
		a.height = msg.Height
		return a, nil

	case spinner.TickMsg:
		if !a.busy {
			return a, nil
		}
		var cmd tea.Cmd
		a.spinner, cmd = a.spinner.Update(msg)
		return a, cmd

	case messages.PlatformsLoaded:
		if msg.Err != nil {
			a.err = msg.Err
			return a, nil
		}
		a.platforms = msg.Platforms
		return a, nil

	case messages.VideoImported:
		a.busy = false
		if msg.Err != nil {
			a.err = msg.Err
			return a, nil
		}
		a.err = nil
		a.video = msg.Video
		a.step = messages.StepEdit
		a.pathInput.Blur()
		return a, nil

	case messages.CaptionsGenerated:
		a.busy = false
		if msg.Err != nil {
			a.err = msg.Err
			return a, nil
		}
		for _, c := range msg.Captions {
			a.captions[c.Platform] = c.Text
		}
		return a, nil

	case messages.Published:
		a.busy = false
		a.results = msg.Results
		a.err = msg.Err
		a.step = messages.StepDone
		return a, nil

	case tea.KeyMsg:
		return a.handleKey(msg)
	}

	return a, nil
}

func (a *App) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.Type == tea.KeyCtrlC {
		return a, tea.Quit
	}
	if a.busy {
		return a, nil
	}

	switch a.step {
	case messages.StepUpload:
		return a.handleUploadKey(msg)
	case messages.StepEdit:
		return a.handleEditKey(msg)
	case messages.StepDone:
		if msg.String() == "q" || msg.Type == tea.KeyEsc || msg.Type == tea.KeyEnter {
			return a, tea.Quit
		}
	}
	return a, nil
}

func (a *App) handleUploadKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.Type {
	case tea.KeyEsc:
		return a, tea.Quit
	case tea.KeyEnter:
		path := strings.TrimSpace(a.pathInput.Value())
		if path == "" {
			return a, nil
		}
		a.busy = true
		return a, tea.Batch(a.spinner.Tick, a.importVideo(path))
	}

	var cmd tea.Cmd
	a.pathInput, cmd = a.pathInput.Update(msg)
	return a, cmd
}

func (a *App) handleEditKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if a.editingCaption {
		switch msg.Type {
		case tea.KeyEsc, tea.KeyEnter:
			a.editingCaption = false
			a.captionInput.Blur()
			return a, nil
		}
		var cmd tea.Cmd
		a.captionInput, cmd = a.captionInput.Update(msg)
		return a, cmd
	}

	switch msg.String() {
	case "esc":
		a.step = messages.StepUpload
		a.pathInput.Focus()
		return a, textinput.Blink
	case "q":
		return a, tea.Quit
	case "up", "k":
		if a.cursor > 0 {
			a.cursor--
		}
	case "down", "j":
		if a.cursor < len(a.platforms)-1 {
			a.cursor++
		}
	case " ":
		if a.cursor < len(a.platforms) {
			p := a.platforms[a.cursor]
			if p.Connected {
				a.selected[p.ID] = !a.selected[p.ID]
			}
		}
	case "c":
		a.editingCaption = true
		return a, a.captionInput.Focus()
	case "a":
		if a.ports.Captions == nil || len(a.selectedIDs()) == 0 {
			return a, nil
		}
		a.busy = true
		return a, tea.Batch(a.spinner.Tick, a.generateCaptions())
	case "enter":
		if len(a.selectedIDs()) == 0 {
			a.err = fmt.Errorf("select at least one connected platform")
			return a, nil
		}
		a.err = nil
		a.busy = true
		a.step = messages.StepPublish
		return a, tea.Batch(a.spinner.Tick, a.publish())
	}
	return a, nil
}

// selectedIDs returns the chosen platforms in display order.
func (a *App) selectedIDs() []domain.PlatformID {
	var ids []domain.PlatformID
	for _, p := range a.platforms {
		if a.selected[p.ID] {
			ids = append(ids, p.ID)
		}
	}
	return ids
}

func (a *App) loadPlatforms() tea.Cmd {
	return func() tea.Msg {
		platforms, err := a.ports.Connections.Platforms(a.ctx)
		return messages.PlatformsLoaded{Platforms: platforms, Err: err}
	}
}

func (a *App) importVideo(path string) tea.Cmd {
	return func() tea.Msg {
		video, err := a.ports.Video.Import(a.ctx, path)
		return messages.VideoImported{Video: video, Err: err}
	}
}

func (a *App) generateCaptions() tea.Cmd {
	ids := a.selectedIDs()
	return func() tea.Msg {
		captions, err := a.ports.Captions.Generate(a.ctx, *a.video, ids)
		return messages.CaptionsGenerated{Captions: captions, Err: err}
	}
}

func (a *App) publish() tea.Cmd {
	req := domain.PublishRequest{Schedule: domain.ScheduleNow}
	shared := a.captionInput.Value()
	for _, p := range a.platforms {
		if !a.selected[p.ID] {
			continue
		}
		caption := shared
		if text, ok := a.captions[p.ID]; ok && caption == "" {
			caption = text
		}
		req.Selections = append(req.Selections, domain.PlatformSelection{
			Platform: p.ID,
			PostType: p.DefaultPostType(),
			Caption:  caption,
		})
	}
	video := *a.video
	return func() tea.Msg {
		results, err := a.ports.Publish.Publish(a.ctx, video, req)
		return messages.Published{Results: results, Err: err}
	}
}

// View implements tea.Model.
func (a *App) View() string {
	var b strings.Builder

	b.WriteString(a.styles.Title.Render("CrossPost"))
	b.WriteString(a.styles.Muted.Render("  " + stepLabel(a.step)))
	b.WriteString("\n\n")

	switch a.step {
	case messages.StepUpload:
		b.WriteString(a.viewUpload())
	case messages.StepEdit:
		b.WriteString(a.viewEdit())
	case messages.StepPublish:
		b.WriteString(a.spinner.View() + " Publishing...")
	case messages.StepDone:
		b.WriteString(a.viewDone())
	}

	if a.err != nil {
		b.WriteString("\n\n" + a.styles.Error.Render(a.err.Error()))
	}

	return b.String()
}

func (a *App) viewUpload() string {
	var b strings.Builder
	b.WriteString(a.styles.InputField.Render(a.pathInput.View()))
	b.WriteString("\n\n")
	if a.busy {
		b.WriteString(a.spinner.View() + " Importing...")
	} else {
		b.WriteString(a.styles.Help.Render("enter: import  esc: quit"))
	}
	return b.String()
}

func (a *App) viewEdit() string {
	var b strings.Builder

	if a.video != nil {
		summary := fmt.Sprintf("%s  %.1f MB", a.video.Path, float64(a.video.Size)/(1024*1024))
		if a.video.Duration > 0 {
			summary += fmt.Sprintf("  %.0fs", a.video.Duration.Seconds())
		}
		b.WriteString(a.styles.Subtitle.Render(summary))
		b.WriteString("\n\n")
	}

	for i, p := range a.platforms {
		mark := "[ ]"
		if a.selected[p.ID] {
			mark = "[x]"
		}
		line := fmt.Sprintf("%s %s %s", mark, p.Icon, p.Name)
		if !p.Connected {
			line += "  (not connected)"
		} else if text, ok := a.captions[p.ID]; ok {
			line += "  " + truncate(text, 40)
		}

		switch {
		case i == a.cursor:
			b.WriteString(a.styles.Selected.Render(line))
		case !p.Connected:
			b.WriteString(a.styles.Muted.Render(line))
		default:
			b.WriteString(a.styles.Normal.Render(line))
		}
		b.WriteString("\n")
	}

	b.WriteString("\n")
	if a.editingCaption {
		b.WriteString(a.styles.InputField.Render(a.captionInput.View()))
		b.WriteString("\n" + a.styles.Help.Render("enter/esc: done"))
	} else {
		if caption := a.captionInput.Value(); caption != "" {
			b.WriteString(a.styles.Normal.Render("Caption: "+truncate(caption, 50)) + "\n")
		}
		if a.busy {
			b.WriteString(a.spinner.View() + " Generating captions...")
		} else {
			b.WriteString(a.styles.Help.Render("space: select  c: caption  a: auto-captions  enter: publish  esc: back"))
		}
	}

	return b.String()
}

func (a *App) viewDone() string {
	var b strings.Builder
	if len(a.results) > 0 {
		b.WriteString(a.styles.Success.Render("Posted!"))
		b.WriteString("\n\n")
		for _, r := range a.results {
			b.WriteString(fmt.Sprintf("  %s  %s as %s (id %s)\n", r.Platform, r.PostType, r.Username, r.ID))
		}
	}
	b.WriteString("\n" + a.styles.Help.Render("enter/q: quit"))
	return b.String()
}

func stepLabel(step messages.Step) string {
	switch step {
	case messages.StepUpload:
		return "1/3 Upload"
	case messages.StepEdit:
		return "2/3 Edit"
	case messages.StepPublish, messages.StepDone:
		return "3/3 Publish"
	}
	return ""
}

func truncate(s string, max int) string {
	if len(s) <= max {
		return s
	}
	return s[:max-3] + "..."
}
