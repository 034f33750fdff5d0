package server

import "net/http"

func (s *Server) handleIndex(w http.ResponseWriter, r *http.Request) {
	if r.URL.Path != "/" {
		http.NotFound(w, r)
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.Write([]byte(indexHTML))
}

// indexHTML is the embedded preview page: paste a graph document,
// render it through the API, and watch the live feed.
const indexHTML = `<!DOCTYPE html>
<html lang="en">
<head>
<meta charset="utf-8">
<title>edgeviz</title>
<style>
  body { font-family: sans-serif; margin: 1.5rem; display: flex; gap: 1.5rem; }
  textarea { width: 30rem; height: 22rem; font-family: monospace; font-size: 12px; }
  #preview { border: 1px solid #ccc; min-width: 30rem; min-height: 22rem; }
  #preview img { max-width: 100%; }
  #feed { font-family: monospace; font-size: 12px; color: #555; max-height: 10rem; overflow-y: auto; }
  button { margin-top: 0.5rem; }
</style>
</head>
<body>
<div>
  <h1>edgeviz</h1>
  <textarea id="doc">{
  "directed": true,
  "nodes": [
    {"id": "a", "label": "api"},
    {"id": "b", "label": "store"},
    {"id": "c", "label": "cache"}
  ],
  "edges": [
    {"from": "a", "to": "b"},
    {"from": "a", "to": "c"}
  ]
}</textarea>
  <br>
  <select id="format">
    <option value="svg">svg</option>
    <option value="png">png</option>
    <option value="dot">dot</option>
  </select>
  <select id="algorithm">
    <option value="circular">circular</option>
    <option value="spring">spring</option>
    <option value="grid">grid</option>
  </select>
  <button id="render">Render</button>
  <h3>Live feed</h3>
  <div id="feed"></div>
</div>
<div id="preview"></div>
<script>
const feed = document.getElementById("feed");
const preview = document.getElementById("preview");

function connect() {
  const proto = location.protocol === "https:" ? "wss:" : "ws:";
  const ws = new WebSocket(proto + "//" + location.host + "/api/live");
  ws.onmessage = (msg) => {
    const ev = JSON.parse(msg.data);
    const line = document.createElement("div");
    line.textContent = ev.type + " " + ev.format + " (" + ev.nodes + " nodes, " +
      ev.edges + " edges, " + ev.elapsed + (ev.cached ? ", cached" : "") + ")";
    feed.prepend(line);
  };
  ws.onclose = () => setTimeout(connect, 2000);
}
connect();

document.getElementById("render").onclick = async () => {
  let doc;
  try {
    doc = JSON.parse(document.getElementById("doc").value);
  } catch (err) {
    preview.textContent = "invalid JSON: " + err;
    return;
  }
  const format = document.getElementById("format").value;
  const algorithm = document.getElementById("algorithm").value;
  const resp = await fetch("/api/render", {
    method: "POST",
    headers: {"Content-Type": "application/json"},
    body: JSON.stringify({graph: doc, format: format, algorithm: algorithm,
      nodes: {labels: true}}),
  });
  if (!resp.ok) {
    const err = await resp.json();
    preview.textContent = err.code + ": " + err.error;
    return;
  }
  if (format === "dot") {
    preview.textContent = await resp.text();
    return;
  }
  const blob = await resp.blob();
  preview.innerHTML = "";
  const img = document.createElement("img");
  img.src = URL.createObjectURL(blob);
  preview.appendChild(img);
};
</script>
</body>
</html>
`
