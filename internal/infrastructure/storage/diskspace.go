package storage

import (
	"context"
	"fmt"
	"strconv"

	"github.com/shirou/gopsutil/v3/disk"
)

var byteUnits = []string{"bytes", "KB", "MB", "GB", "TB", "PB"}

// Quantity is a byte count scaled to the largest unit that keeps the value
// above one.
type Quantity struct {
	Value float64 `json:"value"`
	Unit  string  `json:"unit"`
}

func (q Quantity) String() string {
	return strconv.FormatFloat(q.Value, 'f', 2, 64) + " " + q.Unit
}

// FormatBytes scales a raw byte count into a Quantity, rounded to two
// decimals.
func FormatBytes(bytes uint64) Quantity {
	value := float64(bytes)
	i := 0
	for value >= 1024 && i < len(byteUnits)-1 {
		value /= 1024
		i++
	}
	rounded, _ := strconv.ParseFloat(strconv.FormatFloat(value, 'f', 2, 64), 64)
	return Quantity{Value: rounded, Unit: byteUnits[i]}
}

// SpaceReport summarizes the capacity of the volume holding the uploads
// directory.
type SpaceReport struct {
	Path           string
	Total          uint64
	Used           uint64
	Free           uint64
	UsedPercentage float64
	FreePercentage float64
}

// SpaceReport queries the filesystem hosting the uploads directory.
func (u *Uploads) SpaceReport(ctx context.Context) (*SpaceReport, error) {
	usage, err := disk.UsageWithContext(ctx, u.dir)
	if err != nil {
		return nil, fmt.Errorf("query disk usage: %w", err)
	}

	report := &SpaceReport{
		Path:  u.dir,
		Total: usage.Total,
		Free:  usage.Free,
		Used:  usage.Total - usage.Free,
	}
	if usage.Total > 0 {
		report.UsedPercentage = round2(float64(report.Used) / float64(usage.Total) * 100)
		report.FreePercentage = round2(float64(report.Free) / float64(usage.Total) * 100)
	}

	return report, nil
}

func round2(v float64) float64 {
	rounded, _ := strconv.ParseFloat(strconv.FormatFloat(v, 'f', 2, 64), 64)
	return rounded
}
