package main

import (
	"log"
	"net/http"

	"github.com/spf13/cobra"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve the pipeline over HTTP",
	Long: `Serve the normalization pipeline as an HTTP API.

  POST /api/normalize   program text in, normalized program + stats out
  POST /api/annotate    program text in, safety-annotated program + stats out
  GET  /ws/process      websocket; each message is a program, replies
                        stream the transformed lines
  GET  /events/jobs     server-sent events with per-job statistics
  /data/                GET/PUT/DELETE program files in the data directory`,
	RunE: func(cmd *cobra.Command, args []string) error {
		api := newAPI(cfg)

		log.Printf("listening on %s", cfg.Listen)
		return http.ListenAndServe(cfg.Listen, http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
			w.Header().Set("Access-Control-Allow-Origin", "*")
			w.Header().Set("Access-Control-Allow-Methods", "*")
			log.Printf("%s %s - %s", req.Method, req.URL.Path, req.RemoteAddr)
			api.ServeHTTP(w, req)
		}))
	},
}
