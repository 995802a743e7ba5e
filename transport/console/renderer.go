package console

import (
	"io"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
	"github.com/rocketscienceinc/tictactoe-cli/internal/entity"
)

// Renderer draws boards with X in red and O in blue when the output supports color.
type Renderer struct {
	renderer *lipgloss.Renderer

	XStyle    lipgloss.Style
	OStyle    lipgloss.Style
	WarnStyle lipgloss.Style
}

func NewRenderer(out io.Writer) *Renderer {
	r := &Renderer{
		renderer: lipgloss.NewRenderer(out),
	}
	r.resetStyles()

	return r
}

func (that *Renderer) DisableColor() {
	that.renderer.SetColorProfile(termenv.Ascii)
	that.resetStyles()
}

func (that *Renderer) resetStyles() {
	that.XStyle = that.renderer.NewStyle().Foreground(lipgloss.Color("1"))
	that.OStyle = that.renderer.NewStyle().Foreground(lipgloss.Color("4"))
	that.WarnStyle = that.renderer.NewStyle().Foreground(lipgloss.Color("3"))
}

// Board renders a header of column indices followed by one line per row.
func (that *Renderer) Board(board *entity.Board) string {
	size := board.Size()

	var b strings.Builder

	header := make([]string, size)
	for i := range size {
		header[i] = strconv.Itoa(i)
	}
	b.WriteString("  " + strings.Join(header, " "))

	for row := range size {
		cells, err := board.Row(row)
		if err != nil {
			break
		}

		rendered := make([]string, size)
		for i, cell := range cells {
			rendered[i] = that.Cell(cell)
		}

		b.WriteString("\n" + strconv.Itoa(row) + " " + strings.Join(rendered, " "))
	}

	return b.String()
}

func (that *Renderer) Cell(cell entity.Cell) string {
	switch cell {
	case entity.CellX:
		return that.XStyle.Render(cell.String())
	case entity.CellO:
		return that.OStyle.Render(cell.String())
	default:
		return cell.String()
	}
}

func (that *Renderer) Warning(text string) string {
	return that.WarnStyle.Render(text)
}
