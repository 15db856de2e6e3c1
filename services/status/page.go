package status

import (
	"html/template"
	"time"

	"github.com/barnybug/pirstatus/motion"
)

const Placeholder = "No motion detected yet"

var pageTemplate = template.Must(template.New("page").Parse(`<!DOCTYPE html>
<html>
  <head>
    <title>Motion Sensor</title>
    {{- if .Refresh}}
    <meta http-equiv="refresh" content="{{.Refresh}}">
    {{- end}}
    <style>
      body {
        font-family: sans-serif;
        margin: 2rem;
      }
      .card {
        border: 1px solid #ccc;
        border-radius: 8px;
        padding: 1.5rem;
        max-width: 400px;
      }
      .time {
        font-size: 1.5rem;
        font-weight: bold;
      }
    </style>
  </head>
  <body>
    <div class="card">
      {{- if .Detected}}
      <div class="time">Last motion detected at: <time datetime="{{.ISO}}">{{.Formatted}}</time></div>
      {{- else}}
      <div class="time">{{.Placeholder}}</div>
      {{- end}}
    </div>
  </body>
</html>
`))

type page struct {
	Refresh     int
	Detected    bool
	ISO         string
	Formatted   string
	Placeholder string
}

func newPage(record *motion.Record, loc *time.Location, refresh int) page {
	p := page{Refresh: refresh, Placeholder: Placeholder}
	if at, ok := record.Last(); ok {
		at = at.In(loc)
		p.Detected = true
		p.ISO = at.Format(time.RFC3339)
		p.Formatted = at.Format(motion.TimeLayout)
	}
	return p
}
