package main

import (
	"encoding/json"
	"io"
	"log"
	"net/http"
	"os"
	"path"
	"path/filepath"

	sse "github.com/alexandrevicenzi/go-sse"

	"github.com/mrfp/gcodeprep/gcode"
	"github.com/mrfp/gcodeprep/internal/config"
)

type api struct {
	http.Handler
	cfg config.Config
	sse *sse.Server
}

// jobResult is the response body of the /api endpoints.
type jobResult struct {
	Stats   gcode.Stats `json:"stats"`
	Program string      `json:"program"`
}

func newAPI(cfg config.Config) *api {
	mux := http.NewServeMux()

	a := &api{
		Handler: mux,
		cfg:     cfg,
		sse: sse.NewServer(&sse.Options{
			Logger: log.New(io.Discard, "", 0),
		}),
	}

	fs := http.FileServer(http.Dir(cfg.DataDir))
	mux.Handle("/data/", http.StripPrefix("/data", http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
		switch req.Method {
		case "GET":
			fs.ServeHTTP(w, req)
		case "PUT":
			a.putFile(w, req)
		case "DELETE":
			a.deleteFile(w, req)
		default:
			http.Error(w, http.StatusText(http.StatusMethodNotAllowed), http.StatusMethodNotAllowed)
		}
	})))

	mux.HandleFunc("/api/normalize", a.normalize)
	mux.HandleFunc("/api/annotate", a.annotate)
	mux.HandleFunc("/ws/process", a.process)
	mux.Handle("/events/", a.sse)

	return a
}

func (a *api) normalize(w http.ResponseWriter, req *http.Request) {
	a.runPipeline(w, req, gcode.Pipeline{NoAnnotate: true})
}

func (a *api) annotate(w http.ResponseWriter, req *http.Request) {
	// query only: FormValue would eat a form-encoded body
	skip := req.URL.Query().Get("skipNormalize") == "1"
	a.runPipeline(w, req, gcode.Pipeline{SkipNormalize: skip})
}

// runPipeline transforms the request body with a per-request pipeline;
// no state is shared between requests.
func (a *api) runPipeline(w http.ResponseWriter, req *http.Request, pl gcode.Pipeline) {
	if req.Method != "POST" {
		http.Error(w, http.StatusText(http.StatusMethodNotAllowed), http.StatusMethodNotAllowed)
		return
	}

	data, err := io.ReadAll(req.Body)
	if err != nil {
		log.Printf("ERROR: read body: %+v", err)
		http.Error(w, err.Error(), 500)
		return
	}

	out, st := pl.Process(gcode.ParseProgram(string(data)))
	a.publishStats(st)

	w.Header().Set("Content-Type", "application/json")
	err = json.NewEncoder(w).Encode(jobResult{Stats: st, Program: out.String()})
	if err != nil {
		log.Println("ERROR: encode:", err)
	}
}

func (a *api) publishStats(st gcode.Stats) {
	data, err := json.Marshal(st)
	if err != nil {
		log.Printf("ERROR: marshal json: %+v", err)
		return
	}
	a.sse.SendMessage("/events/jobs", sse.SimpleMessage(string(data)))
}

// dataPath resolves a request path inside the data directory, refusing
// anything that would escape it.
func (a *api) dataPath(name string) string {
	clean := path.Clean("/" + name)
	return filepath.Join(a.cfg.DataDir, filepath.FromSlash(clean))
}

func (a *api) putFile(w http.ResponseWriter, req *http.Request) {
	name := a.dataPath(req.URL.Path)
	os.MkdirAll(filepath.Dir(name), 0755)
	f, err := os.Create(name)
	if err != nil {
		log.Printf("ERROR: create '%s': %+v", name, err)
		http.Error(w, err.Error(), 500)
		return
	}
	defer f.Close()
	_, err = io.Copy(f, req.Body)
	if err != nil {
		log.Printf("ERROR: write '%s': %+v", name, err)
		http.Error(w, err.Error(), 500)
		return
	}
}

func (a *api) deleteFile(w http.ResponseWriter, req *http.Request) {
	name := a.dataPath(req.URL.Path)
	err := os.Remove(name)
	if err != nil {
		log.Printf("ERROR: delete '%s': %+v", name, err)
		http.Error(w, err.Error(), 500)
		return
	}
}
