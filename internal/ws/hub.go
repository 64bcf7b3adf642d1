package ws

import (
	"encoding/json"
	"net/http"
	"sync"
	"time"

	"github.com/gorilla/websocket"
	"github.com/rs/zerolog/log"

	"github.com/coreman2200/funtimes-hauntlight/internal/camera"
	diag "github.com/coreman2200/funtimes-hauntlight/internal/diagnostics"
	"github.com/coreman2200/funtimes-hauntlight/internal/scene"
)

const writeWait = 200 * time.Millisecond

// Status is reported by /health. It is filled in by the host.
type Status struct {
	Elapsed        float64 `json:"elapsed_s"`
	LightningState string  `json:"lightning_state"`
	NextFlash      float64 `json:"next_flash_s"`
	BoundSlots     []int   `json:"bound_slots"`
}

// Hub streams frame snapshots and diagnostics to websocket clients and
// forwards camera control messages to the orbit controls.
type Hub struct {
	mu          sync.RWMutex
	frameID     uint64
	startTime   time.Time
	clients     map[*websocket.Conn]bool
	diagClients map[*websocket.Conn]bool
	status      Status

	Orbit *camera.Orbit

	upgrader websocket.Upgrader
}

func NewHub(orbit *camera.Orbit) *Hub {
	return &Hub{
		startTime:   time.Now(),
		clients:     map[*websocket.Conn]bool{},
		diagClients: map[*websocket.Conn]bool{},
		Orbit:       orbit,
		upgrader:    websocket.Upgrader{CheckOrigin: func(r *http.Request) bool { return true }},
	}
}

// Routes registers the hub's handlers on mux.
func (h *Hub) Routes(mux *http.ServeMux) {
	mux.HandleFunc("/ws", h.HandleFramesWS)
	mux.HandleFunc("/diag", h.HandleDiagWS)
	mux.HandleFunc("/control", h.HandleControlWS)
	mux.HandleFunc("/health", h.HandleHealth)
}

type lightJSON struct {
	Name      string     `json:"name"`
	Kind      string     `json:"kind"`
	Color     [3]float32 `json:"color"`
	Intensity float64    `json:"intensity"`
	Position  [3]float64 `json:"position"`
}

type modelJSON struct {
	Name     string     `json:"name"`
	Position [3]float64 `json:"position"`
	Scale    [3]float64 `json:"scale"`
}

type cameraJSON struct {
	Position [3]float64  `json:"position"`
	Target   [3]float64  `json:"target"`
	FOV      float64     `json:"fov"`
	Aspect   float64     `json:"aspect"`
	ViewProj [16]float64 `json:"view_proj"` // column-major
}

type frameJSON struct {
	T       int64       `json:"t"`
	FrameID uint64      `json:"frame_id"`
	Lights  []lightJSON `json:"lights"`
	Models  []modelJSON `json:"models"`
	Camera  *cameraJSON `json:"camera,omitempty"`
}

// Render broadcasts one snapshot of g to every frame client.
func (h *Hub) Render(g *scene.Graph, cam *camera.Camera) error {
	f := frameJSON{T: time.Now().UnixNano()}
	for _, l := range g.Lights() {
		f.Lights = append(f.Lights, lightJSON{
			Name: l.Name, Kind: string(l.Kind),
			Color:     [3]float32{l.Color.R, l.Color.G, l.Color.B},
			Intensity: l.Intensity, Position: l.Position,
		})
	}
	for _, m := range g.Models() {
		f.Models = append(f.Models, modelJSON{Name: m.Name, Position: m.Position, Scale: m.Scale})
	}
	if cam != nil {
		f.Camera = &cameraJSON{Position: cam.Position, Target: cam.Target, FOV: cam.FOV, Aspect: cam.Aspect,
			ViewProj: cam.ViewProjection()}
	}

	h.mu.Lock()
	h.frameID++
	f.FrameID = h.frameID
	h.mu.Unlock()

	b, err := json.Marshal(f)
	if err != nil {
		return err
	}
	h.broadcast(h.clients, b)
	return nil
}

// SetStatus replaces the status reported by /health.
func (h *Hub) SetStatus(s Status) {
	h.mu.Lock()
	h.status = s
	h.mu.Unlock()
}

// PushDiag sends d to every diagnostics client.
func (h *Hub) PushDiag(d diag.Diagnostic) {
	b, err := json.Marshal(d)
	if err != nil {
		return
	}
	h.broadcast(h.diagClients, b)
}

func (h *Hub) broadcast(set map[*websocket.Conn]bool, b []byte) {
	h.mu.RLock()
	defer h.mu.RUnlock()
	for c := range set {
		c.SetWriteDeadline(time.Now().Add(writeWait))
		if err := c.WriteMessage(websocket.TextMessage, b); err != nil {
			log.Debug().Err(err).Msg("ws write")
		}
	}
}

func (h *Hub) HandleFramesWS(w http.ResponseWriter, r *http.Request) {
	h.serveSubscriber(w, r, h.clients)
}

func (h *Hub) HandleDiagWS(w http.ResponseWriter, r *http.Request) {
	h.serveSubscriber(w, r, h.diagClients)
}

// serveSubscriber registers a write-only client and drops it once its read
// side fails.
func (h *Hub) serveSubscriber(w http.ResponseWriter, r *http.Request, set map[*websocket.Conn]bool) {
	conn, err := h.upgrader.Upgrade(w, r, nil)
	if err != nil {
		return
	}
	h.mu.Lock()
	set[conn] = true
	h.mu.Unlock()

	go func() {
		defer func() {
			h.mu.Lock()
			delete(set, conn)
			h.mu.Unlock()
			conn.Close()
		}()
		for {
			if _, _, err := conn.ReadMessage(); err != nil {
				return
			}
		}
	}()
}

// ControlMsg is one camera input from the browser.
type ControlMsg struct {
	Rotate *[2]float64 `json:"rotate,omitempty"` // azimuth, polar (radians)
	Zoom   float64     `json:"zoom,omitempty"`
	Resize *[2]int     `json:"resize,omitempty"` // width, height
}

func (h *Hub) HandleControlWS(w http.ResponseWriter, r *http.Request) {
	conn, err := h.upgrader.Upgrade(w, r, nil)
	if err != nil {
		return
	}
	defer conn.Close()
	for {
		_, data, err := conn.ReadMessage()
		if err != nil {
			return
		}
		var msg ControlMsg
		if err := json.Unmarshal(data, &msg); err != nil {
			log.Debug().Err(err).Msg("bad control message")
			continue
		}
		h.applyControl(msg)
	}
}

func (h *Hub) applyControl(msg ControlMsg) {
	if h.Orbit == nil {
		return
	}
	if msg.Rotate != nil {
		h.Orbit.Rotate(msg.Rotate[0], msg.Rotate[1])
	}
	if msg.Zoom > 0 {
		h.Orbit.Zoom(msg.Zoom)
	}
	if msg.Resize != nil {
		h.Orbit.Resize(msg.Resize[0], msg.Resize[1])
	}
}

func (h *Hub) HandleHealth(w http.ResponseWriter, r *http.Request) {
	h.mu.RLock()
	defer h.mu.RUnlock()
	resp := map[string]any{
		"frame_id":        h.frameID,
		"uptime_s":        time.Since(h.startTime).Seconds(),
		"elapsed_s":       h.status.Elapsed,
		"lightning_state": h.status.LightningState,
		"next_flash_s":    h.status.NextFlash,
		"bound_slots":     h.status.BoundSlots,
	}
	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(resp)
}
