// Package status is a service serving the last detected motion as a web page.
//
// The endpoints supported are:
//
// http://localhost:8080/ - HTML page with the time of the last motion
//
// http://localhost:8080/api/motion - the same as JSON
//
// http://localhost:8080/metrics - Prometheus metrics
package status

import (
	"bytes"
	"context"
	"encoding/json"
	"log"
	"net"
	"net/http"
	"time"

	"github.com/gorilla/mux"
	"github.com/pkg/errors"

	"github.com/barnybug/pirstatus/metrics"
	"github.com/barnybug/pirstatus/motion"
)

const shutdownTimeout = 5 * time.Second

// Service status
type Service struct {
	Addr    string
	Record  *motion.Record
	Refresh int
	Metrics *metrics.Metrics
	// Location times are shown in. Defaults to local time.
	Location *time.Location
	// Listening, when set, is closed once the listener is accepting.
	Listening chan struct{}
}

// ID of the service
func (service *Service) ID() string {
	return "status"
}

func (service *Service) location() *time.Location {
	if service.Location == nil {
		return time.Local
	}
	return service.Location
}

func (service *Service) count(route string) {
	if service.Metrics != nil {
		service.Metrics.PageRequests.WithLabelValues(route).Inc()
	}
}

func (service *Service) index(w http.ResponseWriter, r *http.Request) {
	service.count("index")
	var buf bytes.Buffer
	p := newPage(service.Record, service.location(), service.Refresh)
	if err := pageTemplate.Execute(&buf, p); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.Write(buf.Bytes())
}

type motionResponse struct {
	Detected   bool       `json:"detected"`
	DetectedAt *time.Time `json:"detected_at"`
}

func (service *Service) apiMotion(w http.ResponseWriter, r *http.Request) {
	service.count("api")
	var resp motionResponse
	if at, ok := service.Record.Last(); ok {
		at = at.In(service.location())
		resp.Detected = true
		resp.DetectedAt = &at
	}
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	if err := json.NewEncoder(w).Encode(resp); err != nil {
		log.Println("Error encoding response:", err)
	}
}

func (service *Service) Router() *mux.Router {
	router := mux.NewRouter()
	router.Path("/").Methods("GET", "HEAD").HandlerFunc(service.index)
	router.Path("/api/motion").Methods("GET").HandlerFunc(service.apiMotion)
	if service.Metrics != nil {
		router.Path("/metrics").Methods("GET").Handler(service.Metrics.Handler())
	}
	return router
}

type loggingHandler struct {
	Handler http.Handler
}

func (h loggingHandler) ServeHTTP(w http.ResponseWriter, req *http.Request) {
	log.Printf("%s %s\n", req.Method, req.RequestURI)
	h.Handler.ServeHTTP(w, req)
}

// Serve on an existing listener until ctx is cancelled, then shut down
// gracefully.
func (service *Service) Serve(ctx context.Context, ln net.Listener) error {
	srv := &http.Server{
		Handler:           loggingHandler{Handler: service.Router()},
		ReadHeaderTimeout: 10 * time.Second,
	}

	errs := make(chan error, 1)
	go func() {
		errs <- srv.Serve(ln)
	}()
	if service.Listening != nil {
		close(service.Listening)
	}

	select {
	case err := <-errs:
		return errors.Wrap(err, "http server")
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return errors.Wrap(err, "http shutdown")
	}
	return nil
}

// Run the service
func (service *Service) Run(ctx context.Context) error {
	ln, err := net.Listen("tcp", service.Addr)
	if err != nil {
		return errors.Wrapf(err, "listening on %s", service.Addr)
	}
	log.Println("Listening on " + ln.Addr().String())
	return service.Serve(ctx, ln)
}
