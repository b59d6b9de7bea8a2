package profiling

import (
	"fmt"
	"runtime"
	"strings"
	"time"

	"github.com/grafana/pyroscope-go"
	"go.uber.org/zap"

	"github.com/mentorhub/mentorhub-api/config"
	"github.com/mentorhub/mentorhub-api/pkg/logger"
)

const (
	defaultAppName        = "mentorhub-api"
	defaultUploadInterval = 15 * time.Second

	// Sampling rates for contention profiles. Lock contention in this service
	// comes from the pgx pool and the session cache.
	mutexProfileFraction = 5
	blockProfileRate     = 5
)

// sampleGroups maps O11Y_PROFILING_SAMPLE_TYPES names to pyroscope profile types,
// in upload order.
var sampleGroups = []struct {
	name  string
	types []pyroscope.ProfileType
}{
	{"cpu", []pyroscope.ProfileType{pyroscope.ProfileCPU}},
	{"alloc_space", []pyroscope.ProfileType{pyroscope.ProfileAllocSpace}},
	{"alloc_objects", []pyroscope.ProfileType{pyroscope.ProfileAllocObjects}},
	{"inuse_space", []pyroscope.ProfileType{pyroscope.ProfileInuseSpace}},
	{"inuse_objects", []pyroscope.ProfileType{pyroscope.ProfileInuseObjects}},
	{"goroutines", []pyroscope.ProfileType{pyroscope.ProfileGoroutines}},
	{"mutex", []pyroscope.ProfileType{pyroscope.ProfileMutexCount, pyroscope.ProfileMutexDuration}},
	{"block", []pyroscope.ProfileType{pyroscope.ProfileBlockCount, pyroscope.ProfileBlockDuration}},
}

// sampleSelection is the parsed form of O11Y_PROFILING_SAMPLE_TYPES
type sampleSelection struct {
	types []pyroscope.ProfileType
	mutex bool
	block bool
}

// InitProfiler starts pyroscope continuous profiling. The returned func stops
// the profiler and turns contention sampling back off.
func InitProfiler(cfg config.ProfilingConfig, o11y config.ObservabilityConfig, environment string) (func(), error) {
	if !cfg.Enabled {
		logger.Info("Continuous profiling disabled")
		return func() {}, nil
	}

	endpoint := strings.TrimSpace(cfg.Endpoint)
	if endpoint == "" {
		return nil, fmt.Errorf("profiling endpoint is required when profiling is enabled")
	}

	uploadRate := time.Duration(cfg.UploadIntervalSeconds) * time.Second
	if uploadRate <= 0 {
		uploadRate = defaultUploadInterval
	}

	selection, err := parseSampleTypes(cfg.SampleTypes)
	if err != nil {
		return nil, err
	}

	appName := strings.TrimSpace(cfg.AppName)
	if appName == "" {
		appName = defaultAppName
	}

	if selection.mutex {
		runtime.SetMutexProfileFraction(mutexProfileFraction)
	}
	if selection.block {
		runtime.SetBlockProfileRate(blockProfileRate)
	}

	profiler, err := pyroscope.Start(pyroscope.Config{
		ApplicationName: appName,
		ServerAddress:   endpoint,
		UploadRate:      uploadRate,
		ProfileTypes:    selection.types,
		Tags:            profileTags(o11y, environment),
		Logger:          logger.Log.Sugar(),
	})
	if err != nil {
		resetContentionSampling(selection)
		return nil, fmt.Errorf("failed to start profiler: %w", err)
	}

	logger.Info("Continuous profiling initialized",
		zap.String("application_name", appName),
		zap.String("endpoint", endpoint),
		zap.Int("profile_types", len(selection.types)),
		zap.Duration("upload_rate", uploadRate),
	)

	return func() {
		if stopErr := profiler.Stop(); stopErr != nil {
			logger.Error("Failed to stop profiler", zap.Error(stopErr))
		}
		resetContentionSampling(selection)
	}, nil
}

func resetContentionSampling(s sampleSelection) {
	if s.mutex {
		runtime.SetMutexProfileFraction(0)
	}
	if s.block {
		runtime.SetBlockProfileRate(0)
	}
}

// parseSampleTypes reads a comma-separated list of sample group names.
// An empty list selects every group.
func parseSampleTypes(value string) (sampleSelection, error) {
	wanted := make(map[string]bool)
	for _, raw := range strings.Split(value, ",") {
		name := strings.ToLower(strings.TrimSpace(raw))
		if name == "" {
			continue
		}
		if !knownSampleGroup(name) {
			return sampleSelection{}, fmt.Errorf("unsupported O11Y_PROFILING_SAMPLE_TYPES value: %q", name)
		}
		wanted[name] = true
	}

	var s sampleSelection
	for _, g := range sampleGroups {
		if len(wanted) > 0 && !wanted[g.name] {
			continue
		}
		s.types = append(s.types, g.types...)
		s.mutex = s.mutex || g.name == "mutex"
		s.block = s.block || g.name == "block"
	}
	return s, nil
}

func knownSampleGroup(name string) bool {
	for _, g := range sampleGroups {
		if g.name == name {
			return true
		}
	}
	return false
}

// profileTags labels every uploaded profile. Empty values are left out.
func profileTags(o11y config.ObservabilityConfig, environment string) map[string]string {
	tags := make(map[string]string, 5)
	for key, value := range map[string]string{
		"service_name":    o11y.ServiceName,
		"namespace":       o11y.ServiceNamespace,
		"environment":     environment,
		"service_version": o11y.ServiceVersion,
		"instance":        o11y.ServiceInstanceID,
	} {
		if value = strings.TrimSpace(value); value != "" {
			tags[key] = value
		}
	}
	return tags
}
