//go:build integration

package integration

import (
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"net/url"
	"sync"
	"time"

	"github.com/jsamuelsen/homepage-gateway/internal/adapters/http/handlers"
	"github.com/jsamuelsen/homepage-gateway/internal/cli"
	"github.com/jsamuelsen/homepage-gateway/internal/platform/config"
)

// Upstream paths the gateway is expected to call.
const (
	songPath          = "/api/rand.music"
	hitokotoPath      = "/"
	nsmaoQuotePath    = "/api/quotes/query"
	nsmaoWeatherPath  = "/api/weather/query"
	amapIPPath        = "/v3/ip"
	amapWeatherPath   = "/v3/weather/weatherInfo"
	oiowebWeatherPath = "/api/weather/GetWeather"
)

type reply struct {
	status int
	body   string
}

// upstream is a stub third-party service answering canned replies by path.
type upstream struct {
	mu       sync.Mutex
	replies  map[string]reply
	delay    time.Duration
	requests []*url.URL
	server   *httptest.Server
}

func newUpstream(replies map[string]reply) *upstream {
	u := &upstream{replies: replies}
	u.server = httptest.NewServer(http.HandlerFunc(u.serve))

	return u
}

func (u *upstream) serve(w http.ResponseWriter, r *http.Request) {
	u.mu.Lock()
	u.requests = append(u.requests, r.URL)
	rep, ok := u.replies[r.URL.Path]
	delay := u.delay
	u.mu.Unlock()

	if delay > 0 {
		time.Sleep(delay)
	}

	if !ok {
		http.NotFound(w, r)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(rep.status)
	_, _ = io.WriteString(w, rep.body)
}

// answer replaces the reply for path.
func (u *upstream) answer(path string, status int, body string) {
	u.mu.Lock()
	defer u.mu.Unlock()

	u.replies[path] = reply{status: status, body: body}
}

// slowDown delays every reply.
func (u *upstream) slowDown(d time.Duration) {
	u.mu.Lock()
	defer u.mu.Unlock()

	u.delay = d
}

// down stops the stub so requests fail at the transport level.
func (u *upstream) down() {
	u.server.Close()
}

func (u *upstream) hits() int {
	u.mu.Lock()
	defer u.mu.Unlock()

	return len(u.requests)
}

// last returns the most recent request URL, or nil.
func (u *upstream) last() *url.URL {
	u.mu.Lock()
	defer u.mu.Unlock()

	if len(u.requests) == 0 {
		return nil
	}

	return u.requests[len(u.requests)-1]
}

// stack is a running gateway wired to stub upstreams.
type stack struct {
	upstreams map[string]*upstream
	gateway   *httptest.Server
}

// startStack starts one stub per upstream service and a gateway built the
// same way the serve command builds it.
func startStack() (*stack, error) {
	s := &stack{
		upstreams: map[string]*upstream{
			"song": newUpstream(map[string]reply{
				songPath: {http.StatusOK, `{"code":1,"data":{"name":"Song","url":"https://music.example/1.mp3","picurl":"https://music.example/1.jpg","artistsname":"Artist"}}`},
			}),
			"hitokoto": newUpstream(map[string]reply{
				hitokotoPath: {http.StatusOK, `{"id":1,"hitokoto":"Stay hungry","from":"test","from_who":null}`},
			}),
			"nsmao": newUpstream(map[string]reply{
				nsmaoQuotePath:   {http.StatusOK, `{"code":200,"data":{"content":"Stay foolish"}}`},
				nsmaoWeatherPath: {http.StatusOK, `{"code":200,"data":{"city":"Shanghai","weather":"rain"}}`},
			}),
			"amap": newUpstream(map[string]reply{
				amapIPPath:      {http.StatusOK, `{"status":"1","city":"Hangzhou","adcode":"330100"}`},
				amapWeatherPath: {http.StatusOK, `{"status":"1","lives":[{"city":"Hangzhou","weather":"sunny"}]}`},
			}),
			"oioweb": newUpstream(map[string]reply{
				oiowebWeatherPath: {http.StatusOK, `{"code":200,"result":{"city":"Beijing"}}`},
			}),
		},
	}

	cfg, err := config.Load("")
	if err != nil {
		s.Close()
		return nil, fmt.Errorf("loading config: %w", err)
	}

	cfg.Services.Song.BaseURL = s.upstreams["song"].server.URL + songPath + "?format=json"
	cfg.Services.Hitokoto.BaseURL = s.upstreams["hitokoto"].server.URL
	cfg.Services.Nsmao.BaseURL = s.upstreams["nsmao"].server.URL
	cfg.Services.Amap.BaseURL = s.upstreams["amap"].server.URL
	cfg.Services.Oioweb.BaseURL = s.upstreams["oioweb"].server.URL
	cfg.SiteLinks.Path = "../../assets/siteLinks.json"

	server, err := cli.NewServer(cfg, slog.New(slog.NewTextHandler(io.Discard, nil)),
		handlers.NewBuildInfo("test", "test", "test"))
	if err != nil {
		s.Close()
		return nil, fmt.Errorf("building gateway: %w", err)
	}

	s.gateway = httptest.NewServer(server.Engine())

	return s, nil
}

func (s *stack) upstream(name string) (*upstream, error) {
	u, ok := s.upstreams[name]
	if !ok {
		return nil, fmt.Errorf("unknown upstream %q", name)
	}

	return u, nil
}

// Close stops the gateway and every stub.
func (s *stack) Close() {
	if s.gateway != nil {
		s.gateway.Close()
	}

	for _, u := range s.upstreams {
		u.server.Close()
	}
}
