package solar

import (
	"encoding/json"
	"sort"
	"time"

	"sunpeak.xyz/solar-telemetry-service/pkg/models"
)

type Resolution string

const (
	ResolutionRaw   Resolution = "raw"
	Resolution5Min  Resolution = "5min"
	ResolutionHour  Resolution = "hour"
	ResolutionDay   Resolution = "day"
	ResolutionMonth Resolution = "month"
)

// ParseResolution validates a resolution selector. An empty string defaults
// to raw; anything else outside the known set is a validation error.
func ParseResolution(raw string) (Resolution, error) {
	switch Resolution(raw) {
	case "":
		return ResolutionRaw, nil
	case ResolutionRaw, Resolution5Min, ResolutionHour, ResolutionDay, ResolutionMonth:
		return Resolution(raw), nil
	default:
		return "", ErrInvalidResolution
	}
}

// BucketTime truncates a timestamp to its resolution bucket, in UTC. 5min
// buckets are fixed wall-clock aligned windows, not session-relative.
func BucketTime(t time.Time, resolution Resolution) time.Time {
	t = t.UTC()
	switch resolution {
	case Resolution5Min:
		return time.Unix((t.Unix()/300)*300, 0).UTC()
	case ResolutionHour:
		return t.Truncate(time.Hour)
	case ResolutionDay:
		return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
	case ResolutionMonth:
		return time.Date(t.Year(), t.Month(), 1, 0, 0, 0, 0, time.UTC)
	default: // raw: the sample is its own bucket
		return t
	}
}

// DataPoint is one output record per bucket: a time field plus one dynamic
// field per parameter present in the bucket.
type DataPoint struct {
	Time   time.Time
	Values map[string]float64
}

func (p DataPoint) MarshalJSON() ([]byte, error) {
	out := make(map[string]any, len(p.Values)+1)
	out["time"] = p.Time.UTC().Format(time.RFC3339Nano)
	for key, value := range p.Values {
		out[key] = value
	}
	return json.Marshal(out)
}

// BucketRows groups raw rows by bucket timestamp, then by parameter key,
// averaging samples per (bucket, parameter). Buckets come back in ascending
// time order; parameters absent from a bucket are simply omitted.
func BucketRows(rows []models.Telemetry, resolution Resolution) []DataPoint {
	type acc struct {
		sum float64
		n   int
	}

	// Keys are UnixNano so raw samples inside the same second stay distinct.
	buckets := make(map[int64]map[string]*acc)
	for _, row := range rows {
		bucket := BucketTime(row.Time, resolution).UnixNano()
		params, ok := buckets[bucket]
		if !ok {
			params = make(map[string]*acc)
			buckets[bucket] = params
		}
		a, ok := params[row.ParameterKey]
		if !ok {
			a = &acc{}
			params[row.ParameterKey] = a
		}
		a.sum += row.Value
		a.n++
	}

	keys := make([]int64, 0, len(buckets))
	for k := range buckets {
		keys = append(keys, k)
	}
	sort.Slice(keys, func(i, j int) bool { return keys[i] < keys[j] })

	points := make([]DataPoint, 0, len(keys))
	for _, k := range keys {
		values := make(map[string]float64, len(buckets[k]))
		for param, a := range buckets[k] {
			values[param] = a.sum / float64(a.n)
		}
		points = append(points, DataPoint{Time: time.Unix(0, k).UTC(), Values: values})
	}
	return points
}

// queryTelemetry answers a bucketed range query for one device. The window
// is [start, end). Bucketing happens in-process over fetched rows so the
// logic stays testable apart from the store.
func (s *Solar) queryTelemetry(deviceID string, start, end time.Time, resolution Resolution, parameters []string) ([]DataPoint, error) {
	if _, err := s.getDevice(deviceID); err != nil {
		return nil, err
	}

	q := s.Db.Conn.
		Where("device_id = ? AND time >= ? AND time < ?", deviceID, start.UTC(), end.UTC())
	if len(parameters) > 0 {
		q = q.Where("parameter_key IN ?", parameters)
	}

	var rows []models.Telemetry
	if err := q.Order("time asc").Find(&rows).Error; err != nil {
		return nil, err
	}

	return BucketRows(rows, resolution), nil
}

type IQueryImpl struct {
	solar *Solar
}

func (iq *IQueryImpl) QueryTelemetry(deviceID string, start, end time.Time, resolution Resolution, parameters []string) ([]DataPoint, error) {
	return iq.solar.queryTelemetry(deviceID, start, end, resolution, parameters)
}

func (s *Solar) GetIQuery() IQuery {
	return &IQueryImpl{solar: s}
}
