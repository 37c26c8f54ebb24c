// SPDX-License-Identifier: MIT

package server

import (
	"html/template"

	"github.com/tomtranjr/msds601-highdim-group9/fullrank"
	"github.com/tomtranjr/msds601-highdim-group9/report"
)

type pageData struct {
	State   fullrank.State
	Presets []string
	MinRows int
	MaxRows int
	MinCols int
	MaxCols int
	Warning string
	Summary []string
	Panels  []report.Panel
	Error   string
}

func newPageData(res fullrank.Result, errMsg string) pageData {
	d := pageData{
		State:   res.State,
		Presets: fullrank.PresetKeys(),
		MinRows: fullrank.MinRows,
		MaxRows: fullrank.MaxRows,
		MinCols: fullrank.MinCols,
		MaxCols: fullrank.MaxCols,
		Panels:  res.View.Panels,
		Error:   errMsg,
	}
	if res.View.Warning != nil {
		d.Warning = res.View.Warning.Text
	}
	for _, l := range res.View.Summary {
		d.Summary = append(d.Summary, l.String())
	}

	return d
}

var pageTemplate = template.Must(template.New("page").Parse(`<!DOCTYPE html>
<html lang="en">
<head>
<meta charset="utf-8">
<title>Why Full Column Rank Keeps OLS on Solid Ground</title>
</head>
<body>
<h2>Why Full Column Rank Keeps Ordinary Least Squares on Solid Ground</h2>
{{if .Error}}<p id="error" role="alert">{{.Error}}</p>{{end}}

<form method="post" action="/fullrank/preset">
  <label>Preset
    <select name="preset" data-event="preset">
      <option value="">None</option>
      {{range .Presets}}<option value="{{.}}">{{.}}</option>{{end}}
    </select>
  </label>
  <button type="submit">Apply</button>
</form>

<form method="post" action="/fullrank/shape">
  <label>n <input type="range" name="n" min="{{.MinRows}}" max="{{.MaxRows}}" value="{{.State.N}}" data-event="shape"></label>
  <label>p <input type="range" name="p" min="{{.MinCols}}" max="{{.MaxCols}}" value="{{.State.P}}" data-event="shape"></label>
  <button type="submit">Update</button>
</form>

<form method="post" action="/fullrank/regenerate">
  <button type="submit" data-event="regenerate">Regenerate X</button>
</form>

<div id="warning">{{.Warning}}</div>
<div id="summary">{{range .Summary}}<div>{{.}}</div>{{end}}</div>
<div id="panels">
{{range .Panels}}<section class="panel">
  <h4>{{.Title}}</h4>
  {{if eq .Kind "matrix"}}<pre>{{.Body}}</pre>{{else}}<em>{{.Body}}</em>{{end}}
</section>
{{end}}</div>

<script>
(function () {
  if (!window.WebSocket) { return; }
  var ws = new WebSocket((location.protocol === "https:" ? "wss://" : "ws://") + location.host + "/ws");
  function el(tag, text) { var e = document.createElement(tag); e.textContent = text; return e; }
  ws.onmessage = function (msg) {
    var f = JSON.parse(msg.data);
    if (f.error) { return; }
    var v = f.view;
    document.getElementById("warning").textContent = v.warning ? v.warning.text : "";
    var sum = document.getElementById("summary");
    sum.replaceChildren.apply(sum, v.summary.map(function (l) {
      return el("div", l.label ? l.label + ": " + l.value : l.value);
    }));
    var panels = document.getElementById("panels");
    panels.replaceChildren.apply(panels, v.panels.map(function (p) {
      var s = document.createElement("section");
      s.className = "panel";
      s.appendChild(el("h4", p.title));
      s.appendChild(el(p.kind === "matrix" ? "pre" : "em", p.body));
      return s;
    }));
    document.querySelector("input[name=n]").value = f.state.n;
    document.querySelector("input[name=p]").value = f.state.p;
  };
  document.querySelectorAll("[data-event]").forEach(function (input) {
    var kind = input.getAttribute("data-event");
    input.addEventListener(kind === "regenerate" ? "click" : "change", function (e) {
      if (ws.readyState !== WebSocket.OPEN) { return; }
      e.preventDefault();
      if (kind === "preset") {
        ws.send(JSON.stringify({type: "preset", preset: input.value}));
      } else if (kind === "shape") {
        ws.send(JSON.stringify({
          type: "shape",
          n: +document.querySelector("input[name=n]").value,
          p: +document.querySelector("input[name=p]").value
        }));
      } else {
        ws.send(JSON.stringify({type: "regenerate"}));
      }
    });
  });
})();
</script>
</body>
</html>
`))
