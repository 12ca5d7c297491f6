package services

import (
	"context"
	"runtime"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/gorilla/websocket"
	"github.com/jmoiron/sqlx"
	"github.com/shirou/gopsutil/v3/cpu"
	"github.com/shirou/gopsutil/v3/disk"
	"github.com/shirou/gopsutil/v3/mem"
)

// PlatformSample mixes host metrics with booking counters so the admin ops
// view shows load next to platform activity.
type PlatformSample struct {
	CapturedAt        time.Time `json:"capturedAt"`
	HeapUsedBytes     int64     `json:"heapUsedBytes"`
	SystemMemoryTotal int64     `json:"systemMemoryTotalBytes"`
	SystemMemoryUsed  int64     `json:"systemMemoryUsedBytes"`
	DiskTotalBytes    int64     `json:"diskTotalBytes"`
	DiskUsedBytes     int64     `json:"diskUsedBytes"`
	SystemCpuLoad     float64   `json:"systemCpuLoad"`
	PendingRequests   int       `json:"pendingRequests"`
	AcceptedUpcoming  int       `json:"acceptedUpcoming"`
	CompletedTotal    int       `json:"completedTotal"`
}

func CapturePlatformSample(db *sqlx.DB, diskPath string) (PlatformSample, error) {
	var memStats runtime.MemStats
	runtime.ReadMemStats(&memStats)
	sysMem, _ := mem.VirtualMemory()
	diskStat, err := disk.Usage(diskPath)
	if err != nil {
		diskStat, _ = disk.Usage("/")
	}
	sysCPU, _ := cpu.Percent(0, false)
	sysCPUValue := 0.0
	if len(sysCPU) > 0 {
		sysCPUValue = sysCPU[0] / 100.0
	}

	sample := PlatformSample{
		CapturedAt:        time.Now().UTC(),
		HeapUsedBytes:     int64(memStats.HeapAlloc),
		SystemMemoryTotal: int64(sysMem.Total),
		SystemMemoryUsed:  int64(sysMem.Total - sysMem.Available),
		DiskTotalBytes:    int64(diskStat.Total),
		DiskUsedBytes:     int64(diskStat.Used),
		SystemCpuLoad:     sysCPUValue,
	}
	now := sample.CapturedAt
	if err := db.Get(&sample.PendingRequests, `SELECT COUNT(*) FROM sessions WHERE status = 'requested'`); err != nil {
		return PlatformSample{}, err
	}
	if err := db.Get(&sample.AcceptedUpcoming, `SELECT COUNT(*) FROM sessions WHERE status = 'accepted' AND scheduled_time >= $1`, now); err != nil {
		return PlatformSample{}, err
	}
	if err := db.Get(&sample.CompletedTotal, `SELECT COUNT(*) FROM sessions WHERE status = 'completed'`); err != nil {
		return PlatformSample{}, err
	}

	_, err = db.Exec(`
INSERT INTO platform_metric_samples (
  id, captured_at, heap_used_bytes, system_memory_total_bytes, system_memory_used_bytes,
  disk_total_bytes, disk_used_bytes, system_cpu_load, pending_requests, accepted_upcoming, completed_total
) VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10,$11)
`, uuid.NewString(), sample.CapturedAt, sample.HeapUsedBytes, sample.SystemMemoryTotal, sample.SystemMemoryUsed,
		sample.DiskTotalBytes, sample.DiskUsedBytes, sample.SystemCpuLoad,
		sample.PendingRequests, sample.AcceptedUpcoming, sample.CompletedTotal)
	if err != nil {
		return PlatformSample{}, err
	}
	return sample, nil
}

func LatestPlatformSamples(db *sqlx.DB, limit int) ([]PlatformSample, error) {
	type row struct {
		CapturedAt        time.Time `db:"captured_at"`
		HeapUsedBytes     int64     `db:"heap_used_bytes"`
		SystemMemoryTotal int64     `db:"system_memory_total_bytes"`
		SystemMemoryUsed  int64     `db:"system_memory_used_bytes"`
		DiskTotalBytes    int64     `db:"disk_total_bytes"`
		DiskUsedBytes     int64     `db:"disk_used_bytes"`
		SystemCpuLoad     float64   `db:"system_cpu_load"`
		PendingRequests   int       `db:"pending_requests"`
		AcceptedUpcoming  int       `db:"accepted_upcoming"`
		CompletedTotal    int       `db:"completed_total"`
	}
	rows := []row{}
	if err := db.Select(&rows, `
SELECT captured_at, heap_used_bytes, system_memory_total_bytes, system_memory_used_bytes,
       disk_total_bytes, disk_used_bytes, system_cpu_load, pending_requests, accepted_upcoming, completed_total
FROM platform_metric_samples
ORDER BY captured_at DESC
LIMIT $1
`, limit); err != nil {
		return nil, err
	}
	items := make([]PlatformSample, 0, len(rows))
	for i := len(rows) - 1; i >= 0; i-- {
		items = append(items, PlatformSample{
			CapturedAt:        rows[i].CapturedAt,
			HeapUsedBytes:     rows[i].HeapUsedBytes,
			SystemMemoryTotal: rows[i].SystemMemoryTotal,
			SystemMemoryUsed:  rows[i].SystemMemoryUsed,
			DiskTotalBytes:    rows[i].DiskTotalBytes,
			DiskUsedBytes:     rows[i].DiskUsedBytes,
			SystemCpuLoad:     rows[i].SystemCpuLoad,
			PendingRequests:   rows[i].PendingRequests,
			AcceptedUpcoming:  rows[i].AcceptedUpcoming,
			CompletedTotal:    rows[i].CompletedTotal,
		})
	}
	return items, nil
}

type MetricsHub struct {
	mu      sync.Mutex
	clients map[*websocket.Conn]bool
	ch      chan PlatformSample
}

func NewMetricsHub() *MetricsHub {
	return &MetricsHub{
		clients: map[*websocket.Conn]bool{},
		ch:      make(chan PlatformSample, 16),
	}
}

func (h *MetricsHub) Run(ctx context.Context) {
	for {
		select {
		case sample := <-h.ch:
			h.mu.Lock()
			for conn := range h.clients {
				if err := conn.WriteJSON(sample); err != nil {
					delete(h.clients, conn)
					conn.Close()
				}
			}
			h.mu.Unlock()
		case <-ctx.Done():
			return
		}
	}
}

func (h *MetricsHub) Broadcast(sample PlatformSample) {
	select {
	case h.ch <- sample:
	default:
	}
}

func (h *MetricsHub) Add(conn *websocket.Conn) {
	h.mu.Lock()
	h.clients[conn] = true
	h.mu.Unlock()
}

func (h *MetricsHub) Remove(conn *websocket.Conn) {
	h.mu.Lock()
	delete(h.clients, conn)
	h.mu.Unlock()
}
