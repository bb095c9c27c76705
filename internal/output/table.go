package output

import (
	"io"

	"github.com/olekukonko/tablewriter"
	"github.com/olekukonko/tablewriter/tw"

	"hacksnooze/internal/client/models"
)

// StoryRow is one rendered line of a story table.
type StoryRow struct {
	Story    models.Story
	Favorite bool
}

// newTable builds a borderless left-aligned table, the house style for lists.
func newTable(w io.Writer, headers []string) *tablewriter.Table {
	t := tablewriter.NewTable(w,
		tablewriter.WithConfig(tablewriter.Config{
			Row: tw.CellConfig{
				Formatting: tw.CellFormatting{
					AutoWrap: tw.WrapNone,
				},
				Alignment: tw.CellAlignment{
					Global: tw.AlignLeft,
				},
			},
			Header: tw.CellConfig{
				Formatting: tw.CellFormatting{
					AutoFormat: tw.On,
				},
				Alignment: tw.CellAlignment{
					Global: tw.AlignLeft,
				},
			},
		}),
		tablewriter.WithRendition(tw.Rendition{
			Borders: tw.BorderNone,
			Settings: tw.Settings{
				Separators: tw.Separators{
					ShowHeader: tw.Off,
				},
			},
		}),
	)
	t.Header(headers)
	return t
}

// RenderStories writes a story table. showStars adds the favorite column,
// shown only when someone is signed in. URLs that fail host parsing render
// an empty host rather than aborting the listing.
func RenderStories(w io.Writer, rows []StoryRow, showStars bool) {
	headers := []string{"ID", "Title", "Host", "Author", "Posted By"}
	if showStars {
		headers = append([]string{"Fav"}, headers...)
	}
	t := newTable(w, headers)

	bulk := make([][]string, 0, len(rows))
	for _, r := range rows {
		host, err := r.Story.Hostname()
		if err != nil {
			host = ""
		}
		cols := []string{r.Story.StoryID, r.Story.Title, host, r.Story.Author, r.Story.Username}
		if showStars {
			star := " "
			if r.Favorite {
				star = "*"
			}
			cols = append([]string{star}, cols...)
		}
		bulk = append(bulk, cols)
	}
	t.Bulk(bulk)
	t.Render()
}
