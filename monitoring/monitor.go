package monitoring

import (
	"context"
	"sync"
	"sync/atomic"
	"time"
)

// Config represents monitoring configuration for a batch run.
type Config struct {
	UpdateInterval time.Duration
	WindowSize     int
}

// DefaultConfig returns default monitoring configuration.
func DefaultConfig() *Config {
	return &Config{
		UpdateInterval: 10 * time.Second,
		WindowSize:     60,
	}
}

// NewMonitor creates a new monitor from config.
func NewMonitor(cfg *Config) *Monitor {
	if cfg == nil {
		cfg = DefaultConfig()
	}

	return &Monitor{
		updateInterval: cfg.UpdateInterval,
		windowSize:     cfg.WindowSize,
		fileWindow:     make([]int64, cfg.WindowSize),
	}
}

// Monitor tracks throughput and error rate across a batch run's files.
type Monitor struct {
	mu           sync.RWMutex
	started      atomic.Bool
	fileCount    int64
	errorCount   int64
	lastFileTime time.Time
	startTime    time.Time
	ctx          context.Context
	cancel       context.CancelFunc

	fileWindow  []int64
	windowSize  int
	windowIndex int

	updateInterval time.Duration
}

// Option configures the monitor.
type Option func(*Monitor)

// WithUpdateInterval sets the metrics update interval.
func WithUpdateInterval(interval time.Duration) Option {
	return func(m *Monitor) {
		m.updateInterval = interval
	}
}

// New creates a new monitor.
func New(opts ...Option) *Monitor {
	m := &Monitor{
		updateInterval: 10 * time.Second,
		windowSize:     60,
		fileWindow:     make([]int64, 60),
	}

	for _, opt := range opts {
		opt(m)
	}

	return m
}

// Start begins the background throughput/error-rate updater.
func (m *Monitor) Start() {
	if !m.started.CompareAndSwap(false, true) {
		return
	}

	m.mu.Lock()
	m.startTime = time.Now()
	m.ctx, m.cancel = context.WithCancel(context.Background())
	m.mu.Unlock()

	go m.runMetricsUpdater()
}

// Stop halts the background updater.
func (m *Monitor) Stop() {
	if !m.started.CompareAndSwap(true, false) {
		return
	}
	if m.cancel != nil {
		m.cancel()
	}
}

// RecordFileDone records a completed file analysis (success or failure).
func (m *Monitor) RecordFileDone(success bool) {
	atomic.AddInt64(&m.fileCount, 1)
	m.mu.Lock()
	m.lastFileTime = time.Now()
	m.mu.Unlock()

	status := "success"
	if !success {
		atomic.AddInt64(&m.errorCount, 1)
		status = "failure"
	}
	RecordFileProcessed(status)
}

// GetStats returns current statistics.
func (m *Monitor) GetStats() Stats {
	m.mu.RLock()
	defer m.mu.RUnlock()

	uptime := time.Since(m.startTime)
	files := atomic.LoadInt64(&m.fileCount)
	errors := atomic.LoadInt64(&m.errorCount)

	errorRate := float64(0)
	if files > 0 {
		errorRate = float64(errors) / float64(files)
	}

	return Stats{
		Uptime:        uptime,
		FilesProcessed: files,
		ErrorCount:    errors,
		ErrorRate:     errorRate,
		Throughput:    m.calculateThroughput(),
		LastFileTime:  m.lastFileTime,
	}
}

// calculateThroughput computes files-per-second over the sliding window.
func (m *Monitor) calculateThroughput() float64 {
	total := int64(0)
	count := 0

	for _, v := range m.fileWindow {
		if v > 0 {
			total += v
			count++
		}
	}

	if count == 0 {
		return 0
	}

	avgPerInterval := float64(total) / float64(count)
	intervalsPerSecond := 1.0 / m.updateInterval.Seconds()
	return avgPerInterval * intervalsPerSecond
}

func (m *Monitor) runMetricsUpdater() {
	ticker := time.NewTicker(m.updateInterval)
	defer ticker.Stop()

	lastFileCount := int64(0)

	for {
		select {
		case <-m.ctx.Done():
			return
		case <-ticker.C:
			m.updateMetrics(&lastFileCount)
		}
	}
}

func (m *Monitor) updateMetrics(lastFileCount *int64) {
	currentCount := atomic.LoadInt64(&m.fileCount)
	intervalFiles := currentCount - *lastFileCount
	*lastFileCount = currentCount

	m.mu.Lock()
	m.fileWindow[m.windowIndex] = intervalFiles
	m.windowIndex = (m.windowIndex + 1) % m.windowSize
	m.mu.Unlock()
}

// Stats contains monitor statistics.
type Stats struct {
	Uptime         time.Duration
	FilesProcessed int64
	ErrorCount     int64
	ErrorRate      float64
	Throughput     float64 // files per second
	LastFileTime   time.Time
}

// HealthCheck reports the batch run's current health.
func (m *Monitor) HealthCheck() Health {
	stats := m.GetStats()

	status := HealthStatusHealthy
	issues := []string{}

	if stats.ErrorRate > 0.05 {
		status = HealthStatusDegraded
		issues = append(issues, "High error rate")
	}

	if stats.ErrorRate > 0.5 {
		status = HealthStatusUnhealthy
	}

	return Health{
		Status:    status,
		Timestamp: time.Now(),
		Uptime:    stats.Uptime,
		Issues:    issues,
		Stats:     stats,
	}
}

// Health represents health status.
type Health struct {
	Status    HealthStatus
	Timestamp time.Time
	Uptime    time.Duration
	Issues    []string
	Stats     Stats
}

// HealthStatus represents health status.
type HealthStatus string

const (
	HealthStatusHealthy   HealthStatus = "healthy"
	HealthStatusDegraded  HealthStatus = "degraded"
	HealthStatusUnhealthy HealthStatus = "unhealthy"
)
