package main

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"net/http"
	"os"
	"path"
	"sync"
	"time"

	"github.com/aws/aws-sdk-go/aws"
	"github.com/aws/aws-sdk-go/aws/credentials"
	"github.com/aws/aws-sdk-go/aws/session"
	"github.com/aws/aws-sdk-go/service/s3"
	"github.com/joho/godotenv"
	"github.com/netisu/orbis"
)

const (
	Dimensions    = 512
	Supersample   = 2
	RenderTimeout = 20 * time.Second
	UploadTimeout = 10 * time.Second
)

var (
	defaultEye    = orbis.V(10, 4, 14)
	defaultCenter = orbis.V(0, 0, 0)
	up            = orbis.V(0, 1, 0)
	defaultLight  = orbis.V(-1, 0.4, 0.6).Normalize()
)

type Config struct {
	PostKey       string
	ServerAddress string
	S3AccessKey   string
	S3SecretKey   string
	S3Endpoint    string
	S3Region      string
	S3Bucket      string
	CDNURL        string
	RootDir       string
}

// RingEvent is one render request: a content hash for the output key plus
// the ring material settings.
type RingEvent struct {
	Hash       string     `json:"Hash"`
	RenderJson RingConfig `json:"RenderJson"`
}

type RingConfig struct {
	InnerRadius  float64 `json:"inner_radius"`
	OuterRadius  float64 `json:"outer_radius"`
	PlanetRadius float64 `json:"planet_radius"`
	PlanetColor  string  `json:"planet_color"`
	RingColor    string  `json:"ring_color"`

	MainTexture   string `json:"main_texture"`
	DetailTexture string `json:"detail_texture"`
	DustTexture   string `json:"dust_texture"`
	ShadeTexture  string `json:"shade_texture"`
	ShadeTiles    int    `json:"shade_tiles"`
	ShadeScroll   float64 `json:"shade_scroll"`

	SunRadius float64    `json:"sun_radius"`
	SunPos    [3]float64 `json:"sun_pos"`

	Camera [3]float64 `json:"camera"`
}

// AssetCache is a thread-safe texture cache keyed by URL, so repeated render
// events for the same material do not refetch from the CDN.
type AssetCache struct {
	mu         sync.RWMutex
	textures   map[string]orbis.Texture
	httpClient *http.Client
}

func NewAssetCache(client *http.Client) *AssetCache {
	return &AssetCache{
		textures:   make(map[string]orbis.Texture),
		httpClient: client,
	}
}

// GetTexture fetches a texture from the cache or loads it from the URL.
// Missing assets cache as nil so the shader falls back to its procedural
// defaults instead of hammering the CDN.
func (c *AssetCache) GetTexture(url string) orbis.Texture {
	if url == "" {
		return nil
	}
	c.mu.RLock()
	tex, ok := c.textures[url]
	c.mu.RUnlock()
	if ok {
		return tex
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	if tex, ok = c.textures[url]; ok {
		return tex
	}
	tex = orbis.LoadTextureFromURL(url)
	if tex == nil {
		log.Printf("Warning: texture inaccessible at %s", url)
	}
	c.textures[url] = tex
	return tex
}

type Server struct {
	config     *Config
	s3Uploader *s3.S3
	cache      *AssetCache
	httpClient *http.Client
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func main() {
	rootDir := getEnv("RENDERER_ROOT_DIR", "/var/www/ringserver")
	_ = godotenv.Load(path.Join(rootDir, ".env"))

	cfg := &Config{
		PostKey:       os.Getenv("POST_KEY"),
		ServerAddress: os.Getenv("SERVER_ADDRESS"),
		S3AccessKey:   os.Getenv("S3_ACCESS_KEY"),
		S3SecretKey:   os.Getenv("S3_SECRET_KEY"),
		S3Endpoint:    os.Getenv("S3_ENDPOINT"),
		S3Region:      os.Getenv("S3_REGION"),
		S3Bucket:      os.Getenv("S3_BUCKET"),
		CDNURL:        os.Getenv("CDN_URL"),
		RootDir:       rootDir,
	}

	s3Config := &aws.Config{
		Credentials:      credentials.NewStaticCredentials(cfg.S3AccessKey, cfg.S3SecretKey, ""),
		Endpoint:         aws.String(cfg.S3Endpoint),
		Region:           aws.String(cfg.S3Region),
		S3ForcePathStyle: aws.Bool(true),
	}
	sess, err := session.NewSession(s3Config)
	if err != nil {
		log.Fatalf("Failed to create S3 session: %v", err)
	}

	httpClient := &http.Client{Timeout: 10 * time.Second}

	server := &Server{
		config:     cfg,
		s3Uploader: s3.New(sess),
		cache:      NewAssetCache(httpClient),
		httpClient: httpClient,
	}

	http.HandleFunc("/", server.handleRender)

	fmt.Printf("Starting ring render server on %s\n", cfg.ServerAddress)
	if err := http.ListenAndServe(cfg.ServerAddress, nil); err != nil {
		log.Fatalf("HTTP server error: %v", err)
	}
}

func (s *Server) handleRender(w http.ResponseWriter, r *http.Request) {
	if s.config.PostKey != "" && r.Header.Get("Aeo-Access-Key") != s.config.PostKey {
		http.Error(w, "Unauthorized", http.StatusUnauthorized)
		return
	}
	if r.Method != http.MethodPost {
		http.Error(w, "Method Not Allowed", http.StatusMethodNotAllowed)
		return
	}

	body, err := io.ReadAll(r.Body)
	if err != nil {
		http.Error(w, "Bad Request", http.StatusBadRequest)
		return
	}
	defer r.Body.Close()

	var e RingEvent
	if err := json.Unmarshal(body, &e); err != nil {
		http.Error(w, "Invalid render body", http.StatusBadRequest)
		return
	}
	if e.Hash == "" {
		http.Error(w, "Missing hash", http.StatusBadRequest)
		return
	}

	start := time.Now()
	buf, err := s.renderRing(e.RenderJson)
	if err != nil {
		log.Printf("Render %s failed: %v", e.Hash, err)
		http.Error(w, "Render failed", http.StatusInternalServerError)
		return
	}

	if err := s.uploadToS3(r.Context(), buf, path.Join("rings", e.Hash+".png")); err != nil {
		log.Printf("Upload failed: %v", err)
		http.Error(w, "Upload failed", http.StatusInternalServerError)
		return
	}

	log.Printf("Ring render %s finished in %v", e.Hash, time.Since(start))
	w.WriteHeader(http.StatusOK)
	fmt.Fprintln(w, "Ring processed.")
}

// renderRing builds the scene for one event and renders it to PNG bytes.
// The render itself runs in a goroutine so a pathological scene cannot wedge
// the handler past RenderTimeout.
func (s *Server) renderRing(cfg RingConfig) ([]byte, error) {
	if cfg.OuterRadius <= cfg.InnerRadius || cfg.InnerRadius <= 0 {
		return nil, fmt.Errorf("bad ring radii: %f..%f", cfg.InnerRadius, cfg.OuterRadius)
	}

	eye := defaultEye
	if cfg.Camera != [3]float64{} {
		eye = orbis.V(cfg.Camera[0], cfg.Camera[1], cfg.Camera[2])
	}
	matrix := orbis.LookAt(eye, defaultCenter, up).Perspective(45, 1, 0.1, 1000)

	ring := orbis.NewRingShader(matrix, defaultLight, eye)
	ring.InnerRadius = cfg.InnerRadius
	ring.OuterRadius = cfg.OuterRadius
	// The event's radii are scene units; the eclipse runs in the planet's
	// physical scale.
	ring.PlanetRadius = cfg.PlanetRadius * orbis.PlanetLocalScale
	ring.SunRadius = cfg.SunRadius
	ring.SunPosition = orbis.V(cfg.SunPos[0], cfg.SunPos[1], cfg.SunPos[2])
	if cfg.RingColor != "" {
		ring.BaseColor = orbis.HexColor(cfg.RingColor)
	}
	ring.MainTexture = s.cache.GetTexture(s.assetURL(cfg.MainTexture))
	ring.DetailTexture = s.cache.GetTexture(s.assetURL(cfg.DetailTexture))
	ring.DustTexture = s.cache.GetTexture(s.assetURL(cfg.DustTexture))
	ring.InnerShadeTexture = s.cache.GetTexture(s.assetURL(cfg.ShadeTexture))
	ring.InnerShadeTileCount = cfg.ShadeTiles
	ring.InnerShadeScrollOffset = cfg.ShadeScroll
	ring.Prepare()

	planet := orbis.NewPlanetObject(cfg.PlanetRadius, 64, 32)
	if cfg.PlanetColor != "" {
		planet.SetColor(orbis.HexColor(cfg.PlanetColor))
	}
	ringObject := orbis.NewRingObject(cfg.InnerRadius, cfg.OuterRadius, 256, 8)

	sceneCfg := orbis.RingSceneConfig{
		Eye: eye, Center: defaultCenter, Up: up,
		FovY: 45, Near: 0.1, Far: 1000,
		Size: Dimensions, Scale: Supersample,
		LightDirection: defaultLight,
	}

	type result struct {
		buf []byte
		err error
	}
	done := make(chan result, 1)
	go func() {
		var buf bytes.Buffer
		err := orbis.GenerateRingScene(&buf, sceneCfg, ring, planet, ringObject)
		done <- result{buf.Bytes(), err}
	}()

	select {
	case res := <-done:
		return res.buf, res.err
	case <-time.After(RenderTimeout):
		return nil, fmt.Errorf("render timed out after %v", RenderTimeout)
	}
}

func (s *Server) assetURL(name string) string {
	if name == "" || name == "none" {
		return ""
	}
	return fmt.Sprintf("%s/uploads/%s.png", s.config.CDNURL, name)
}

func (s *Server) uploadToS3(ctx context.Context, data []byte, key string) error {
	ctx, cancel := context.WithTimeout(ctx, UploadTimeout)
	defer cancel()

	size := int64(len(data))
	_, err := s.s3Uploader.PutObjectWithContext(ctx, &s3.PutObjectInput{
		Bucket:        aws.String(s.config.S3Bucket),
		Key:           aws.String(key),
		Body:          bytes.NewReader(data),
		ContentLength: aws.Int64(size),
		ContentType:   aws.String("image/png"),
		ACL:           aws.String("public-read"),
	})

	if err != nil {
		return fmt.Errorf("failed to upload %s: %w", key, err)
	}

	log.Printf("Uploaded %s to S3 (%d bytes)", key, size)
	return nil
}
