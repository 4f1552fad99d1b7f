package server

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"math"
	"net/http"
	"strconv"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/gorilla/mux"

	"shader-frame/internal/field"
	"shader-frame/internal/noise"
	"shader-frame/internal/render"
	"shader-frame/internal/shader"
)

// Limits on preview requests.
const (
	MaxImageSize    = 1024
	DefaultImageW   = 256
	DefaultImageH   = 256
	MaxCellularK    = 16
	defaultCellular = 1
)

// HTTPServer serves still frames and raw noise samples.
type HTTPServer struct {
	addr   string
	router *mux.Router
}

// NewHTTPServer creates the preview server and its routes.
func NewHTTPServer(addr string) *HTTPServer {
	s := &HTTPServer{addr: addr}

	router := mux.NewRouter()
	router.HandleFunc("/shaders", s.shadersHandler).Methods(http.MethodGet)
	router.HandleFunc("/shaders/{name}.png", s.shaderPNGHandler).Methods(http.MethodGet)
	router.HandleFunc("/fields", s.fieldsHandler).Methods(http.MethodGet)
	router.HandleFunc("/fields/{name}", s.fieldHandler).Methods(http.MethodGet)
	router.HandleFunc("/cellular", s.cellularHandler).Methods(http.MethodGet)
	s.router = router

	return s
}

// Handler returns the router.
func (s *HTTPServer) Handler() http.Handler {
	return s.router
}

// Start begins listening for HTTP requests.
func (s *HTTPServer) Start() error {
	log.Printf("HTTP preview listening on %s", s.addr)
	return http.ListenAndServe(s.addr, s.router)
}

type shaderInfo struct {
	Name        string `json:"name"`
	Description string `json:"description"`
}

func (s *HTTPServer) shadersHandler(res http.ResponseWriter, req *http.Request) {
	all := shader.All()
	out := make([]shaderInfo, len(all))
	for i, e := range all {
		out[i] = shaderInfo{Name: e.Name, Description: e.Description}
	}
	writeJSON(res, out)
}

func (s *HTTPServer) shaderPNGHandler(res http.ResponseWriter, req *http.Request) {
	sh, err := shader.Lookup(mux.Vars(req)["name"])
	if err != nil {
		http.Error(res, err.Error(), http.StatusNotFound)
		return
	}

	q := req.URL.Query()
	w, err := intParam(q.Get("w"), DefaultImageW, 1, MaxImageSize)
	if err != nil {
		http.Error(res, "w: "+err.Error(), http.StatusBadRequest)
		return
	}
	h, err := intParam(q.Get("h"), DefaultImageH, 1, MaxImageSize)
	if err != nil {
		http.Error(res, "h: "+err.Error(), http.StatusBadRequest)
		return
	}
	t, err := floatParam(q.Get("t"), 0)
	if err != nil {
		http.Error(res, "t: "+err.Error(), http.StatusBadRequest)
		return
	}

	img := render.NewImage(w, h)
	render.Rasterize(img, sh.Fn, t)

	var buf bytes.Buffer
	if err := img.EncodePNG(&buf); err != nil {
		log.Printf("Encode %s: %v", sh.Name, err)
		http.Error(res, "encode failed", http.StatusInternalServerError)
		return
	}
	res.Header().Set("Content-Type", "image/png")
	res.Header().Set("Content-Length", strconv.Itoa(buf.Len()))
	res.Write(buf.Bytes())
}

type fieldInfo struct {
	Name        string  `json:"name"`
	Description string  `json:"description"`
	Lo          float64 `json:"lo"`
	Hi          float64 `json:"hi"`
}

func (s *HTTPServer) fieldsHandler(res http.ResponseWriter, req *http.Request) {
	all := field.All()
	out := make([]fieldInfo, len(all))
	for i, e := range all {
		out[i] = fieldInfo{Name: e.Name, Description: e.Description, Lo: e.Lo, Hi: e.Hi}
	}
	writeJSON(res, out)
}

type fieldSample struct {
	Field string  `json:"field"`
	X     float64 `json:"x"`
	Y     float64 `json:"y"`
	Z     float64 `json:"z"`
	Value float64 `json:"value"`
}

func (s *HTTPServer) fieldHandler(res http.ResponseWriter, req *http.Request) {
	f, err := field.Lookup(mux.Vars(req)["name"])
	if err != nil {
		http.Error(res, err.Error(), http.StatusNotFound)
		return
	}
	at, err := pointParams(req)
	if err != nil {
		http.Error(res, err.Error(), http.StatusBadRequest)
		return
	}
	writeJSON(res, fieldSample{
		Field: f.Name,
		X:     at.X(), Y: at.Y(), Z: at.Z(),
		Value: f.Fn(at.X(), at.Y(), at.Z()),
	})
}

type featureInfo struct {
	Distance float64    `json:"distance"`
	ID       uint32     `json:"id"`
	Delta    [3]float64 `json:"delta"`
}

func (s *HTTPServer) cellularHandler(res http.ResponseWriter, req *http.Request) {
	at, err := pointParams(req)
	if err != nil {
		http.Error(res, err.Error(), http.StatusBadRequest)
		return
	}
	k, err := intParam(req.URL.Query().Get("k"), defaultCellular, 1, MaxCellularK)
	if err != nil {
		http.Error(res, "k: "+err.Error(), http.StatusBadRequest)
		return
	}

	writeJSON(res, featureInfos(noise.Cellular(at, k)))
}

// featureInfos converts features for the response. Slots no feature point
// reached keep an infinite distance; the list ends at the first of them.
func featureInfos(features []noise.Feature) []featureInfo {
	out := make([]featureInfo, 0, len(features))
	for _, f := range features {
		if math.IsInf(f.Distance, 0) || math.IsNaN(f.Distance) {
			break
		}
		out = append(out, featureInfo{Distance: f.Distance, ID: f.ID, Delta: f.Delta})
	}
	return out
}

var (
	errOutOfRange = errors.New("out of range")
	errNotFinite  = errors.New("not a finite number")
)

func intParam(s string, def, lo, hi int) (int, error) {
	if s == "" {
		return def, nil
	}
	v, err := strconv.Atoi(s)
	if err != nil {
		return 0, err
	}
	if v < lo || v > hi {
		return 0, fmt.Errorf("%w: %d not in [%d, %d]", errOutOfRange, v, lo, hi)
	}
	return v, nil
}

// floatParam parses a finite float. NaN and infinities are rejected.
func floatParam(s string, def float64) (float64, error) {
	if s == "" {
		return def, nil
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, err
	}
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, fmt.Errorf("%w: %s", errNotFinite, s)
	}
	return v, nil
}

func pointParams(req *http.Request) (mgl64.Vec3, error) {
	q := req.URL.Query()
	var at mgl64.Vec3
	for i, name := range []string{"x", "y", "z"} {
		v, err := floatParam(q.Get(name), 0)
		if err != nil {
			return mgl64.Vec3{}, fmt.Errorf("%s: %w", name, err)
		}
		at[i] = v
	}
	return at, nil
}

func writeJSON(res http.ResponseWriter, v any) {
	data, err := json.Marshal(v)
	if err != nil {
		log.Printf("Marshal response: %v", err)
		http.Error(res, "encode failed", http.StatusInternalServerError)
		return
	}
	res.Header().Set("Content-Type", "application/json")
	res.Header().Set("Content-Length", strconv.Itoa(len(data)))
	res.Write(data)
}
