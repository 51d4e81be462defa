package cli

import (
	"encoding/json"
	"io"
	"strconv"
	"time"

	"github.com/gmossy/AI-Enabled-blink-camera-app/internal/model"
	"github.com/jedib0t/go-pretty/v6/table"
)

// renderTable 短行补空，表头和行等宽
func renderTable(headers []string, rows [][]string) string {
	if len(headers) == 0 {
		return ""
	}
	tw := table.NewWriter()
	tw.SetStyle(table.StyleRounded)
	tw.AppendHeader(toRow(headers, len(headers)))
	for _, row := range rows {
		tw.AppendRow(toRow(row, len(headers)))
	}
	return tw.Render()
}

func toRow(cells []string, width int) table.Row {
	row := make(table.Row, width)
	for i := range row {
		if i < len(cells) {
			row[i] = cells[i]
		} else {
			row[i] = ""
		}
	}
	return row
}

func cameraTable(cameras []model.Camera) string {
	rows := make([][]string, 0, len(cameras))
	for _, c := range cameras {
		rows = append(rows, []string{c.ID, c.Name, c.Status, c.LastActivity.Local().Format(time.DateTime)})
	}
	return renderTable([]string{"ID", "NAME", "STATUS", "LAST ACTIVITY"}, rows)
}

func settingsTable(s model.CameraSettings) string {
	return renderTable([]string{"ID", "ARMED", "MOTION", "NOTIFICATIONS"}, [][]string{{
		s.ID,
		strconv.FormatBool(s.Armed),
		strconv.FormatBool(s.MotionEnabled),
		strconv.FormatBool(s.NotificationsEnabled),
	}})
}

func eventTable(events []model.Event) string {
	rows := make([][]string, 0, len(events))
	for _, e := range events {
		rows = append(rows, []string{e.Timestamp.Local().Format(time.DateTime), e.Camera, e.Type, strconv.FormatBool(e.Enabled)})
	}
	return renderTable([]string{"TIME", "CAMERA", "TYPE", "ENABLED"}, rows)
}

func writeJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
