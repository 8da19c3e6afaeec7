// Package review is an interactive browser over a run's output file: a
// scrollable posting list with a detail view, for triaging fresh openings
// without opening the spreadsheet.
package review

import (
	"fmt"
	"os/exec"
	"runtime"
	"strings"

	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"jobsweep/internal/model"
)

// Lines per posting in the list view (title + subtitle + blank separator).
const itemHeight = 3

type viewState int

const (
	viewList viewState = iota
	viewDetail
)

var (
	headerStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("39")).
			Padding(0, 1)

	statusBarStyle = lipgloss.NewStyle().
			Padding(0, 1).
			Foreground(lipgloss.Color("252")).
			Background(lipgloss.Color("236"))

	titleStyle = lipgloss.NewStyle().
			Bold(true)

	subtitleStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("245"))

	selectedTitleStyle = lipgloss.NewStyle().
				Bold(true).
				Foreground(lipgloss.Color("15")).
				Background(lipgloss.Color("24"))

	selectedSubtitleStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color("252")).
				Background(lipgloss.Color("24"))

	detailLabelStyle = lipgloss.NewStyle().
				Bold(true).
				Foreground(lipgloss.Color("39")).
				Width(12)

	snippetStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("252"))
)

type reviewModel struct {
	postings []model.Posting
	source   string // path of the file being reviewed, shown in the header

	cursor   int
	viewport viewport.Model
	width    int
	height   int
	ready    bool

	view     viewState
	detail   model.Posting
	detailVP viewport.Model
}

func newReviewModel(postings []model.Posting, source string) reviewModel {
	return reviewModel{postings: postings, source: source}
}

func (m reviewModel) Init() tea.Cmd {
	return nil
}

func (m reviewModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		listHeight := max(m.height-4, 1)
		if !m.ready {
			m.viewport = viewport.New(m.width, listHeight)
			m.ready = true
		} else {
			m.viewport.Width = m.width
			m.viewport.Height = listHeight
		}
		m.viewport.SetContent(m.renderList())
		if m.view == viewDetail {
			m.detailVP.Width = m.width - 4
			m.detailVP.Height = m.height - 4
			m.detailVP.SetContent(m.renderDetail())
		}
		return m, nil

	case tea.KeyMsg:
		if m.view == viewDetail {
			return m.updateDetailView(msg)
		}
		return m.updateListView(msg)
	}

	return m, nil
}

func (m reviewModel) updateListView(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "q", "ctrl+c", "esc":
		return m, tea.Quit
	case "up", "k":
		m.moveCursor(-1)
		return m, nil
	case "down", "j":
		m.moveCursor(1)
		return m, nil
	case "o":
		if len(m.postings) > 0 {
			openURL(m.postings[m.cursor].URL)
		}
		return m, nil
	case "enter":
		if len(m.postings) == 0 {
			return m, nil
		}
		m.view = viewDetail
		m.detail = m.postings[m.cursor]
		m.detailVP = viewport.New(max(m.width-4, 1), max(m.height-4, 1))
		m.detailVP.SetContent(m.renderDetail())
		return m, nil
	}

	var cmd tea.Cmd
	m.viewport, cmd = m.viewport.Update(msg)
	return m, cmd
}

func (m reviewModel) updateDetailView(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "q", "ctrl+c":
		return m, tea.Quit
	case "esc", "backspace":
		m.view = viewList
		return m, nil
	case "o":
		openURL(m.detail.URL)
		return m, nil
	}

	var cmd tea.Cmd
	m.detailVP, cmd = m.detailVP.Update(msg)
	return m, cmd
}

func (m *reviewModel) moveCursor(delta int) {
	m.cursor = clamp(m.cursor+delta, 0, max(len(m.postings)-1, 0))
	m.viewport.SetContent(m.renderList())
	m.ensureCursorVisible()
}

func (m *reviewModel) ensureCursorVisible() {
	top := m.cursor * itemHeight
	bottom := top + itemHeight - 1
	if top < m.viewport.YOffset {
		m.viewport.SetYOffset(top)
	} else if bottom >= m.viewport.YOffset+m.viewport.Height {
		m.viewport.SetYOffset(bottom - m.viewport.Height + 1)
	}
}

func (m reviewModel) renderList() string {
	if len(m.postings) == 0 {
		return subtitleStyle.Render("no postings in this file")
	}

	var b strings.Builder
	for i, p := range m.postings {
		title := p.Title
		if title == "" {
			title = "(untitled)"
		}
		subtitle := fmt.Sprintf("%s · %s · %s", p.Company, p.Location, p.Source)
		if i == m.cursor {
			b.WriteString(selectedTitleStyle.Render(title) + "\n")
			b.WriteString(selectedSubtitleStyle.Render(subtitle) + "\n\n")
		} else {
			b.WriteString(titleStyle.Render(title) + "\n")
			b.WriteString(subtitleStyle.Render(subtitle) + "\n\n")
		}
	}
	return b.String()
}

func (m reviewModel) renderDetail() string {
	p := m.detail
	row := func(label, value string) string {
		return detailLabelStyle.Render(label) + detailValueOr(value) + "\n"
	}

	var b strings.Builder
	b.WriteString(titleStyle.Render(p.Title) + "\n\n")
	b.WriteString(row("Company", p.Company))
	b.WriteString(row("Location", p.Location))
	b.WriteString(row("Source", p.Source))
	b.WriteString(row("Posted", p.PostedAt))
	b.WriteString(row("URL", p.URL))
	if p.Snippet != "" {
		b.WriteString("\n" + snippetStyle.Render(p.Snippet) + "\n")
	}
	return b.String()
}

func detailValueOr(v string) string {
	if v == "" {
		return subtitleStyle.Render("—")
	}
	return v
}

func (m reviewModel) View() string {
	if !m.ready {
		return "loading..."
	}

	if m.view == viewDetail {
		status := statusBarStyle.Render("esc back · o open in browser · q quit")
		return headerStyle.Render("posting") + "\n" + m.detailVP.View() + "\n" + status
	}

	header := headerStyle.Render(fmt.Sprintf("jobsweep review — %s (%d postings)", m.source, len(m.postings)))
	status := statusBarStyle.Render("↑/↓ move · enter detail · o open · q quit")
	return header + "\n" + m.viewport.View() + "\n" + status
}

// Run starts the review TUI over the given postings.
func Run(postings []model.Posting, source string) error {
	program := tea.NewProgram(newReviewModel(postings, source), tea.WithAltScreen())
	_, err := program.Run()
	return err
}

func openURL(url string) {
	if url == "" {
		return
	}
	switch runtime.GOOS {
	case "darwin":
		_ = exec.Command("open", url).Start()
	case "windows":
		_ = exec.Command("rundll32", "url.dll,FileProtocolHandler", url).Start()
	default:
		_ = exec.Command("xdg-open", url).Start()
	}
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
