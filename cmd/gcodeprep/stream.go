package main

import (
	"encoding/json"
	"log"
	"net/http"

	"github.com/gorilla/websocket"

	"github.com/mrfp/gcodeprep/gcode"
)

var upgrader = websocket.Upgrader{
	CheckOrigin: func(*http.Request) bool { return true },
}

// process streams pipeline results over a websocket. Every text message
// received is treated as a complete program; the reply is one message
// per output line followed by a JSON stats message. Each message gets
// its own pipeline state, so a single connection can process any number
// of independent programs.
func (a *api) process(w http.ResponseWriter, req *http.Request) {
	ws, err := upgrader.Upgrade(w, req, nil)
	if err != nil {
		log.Printf("ERROR: websocket upgrade: %+v", err)
		return
	}
	defer ws.Close()

	skip := req.URL.Query().Get("skipNormalize") == "1"

	for {
		mt, data, err := ws.ReadMessage()
		if err != nil {
			if !websocket.IsCloseError(err, websocket.CloseNormalClosure, websocket.CloseGoingAway) {
				log.Printf("ERROR: websocket read: %+v", err)
			}
			return
		}
		if mt != websocket.TextMessage {
			continue
		}

		out, st := gcode.Pipeline{SkipNormalize: skip}.Process(gcode.ParseProgram(string(data)))
		for _, line := range out.Lines {
			if err = ws.WriteMessage(websocket.TextMessage, []byte(line)); err != nil {
				log.Printf("ERROR: websocket write: %+v", err)
				return
			}
		}

		stats, err := json.Marshal(st)
		if err != nil {
			log.Printf("ERROR: marshal json: %+v", err)
			continue
		}
		if err = ws.WriteMessage(websocket.TextMessage, stats); err != nil {
			log.Printf("ERROR: websocket write: %+v", err)
			return
		}
		a.publishStats(st)
	}
}
