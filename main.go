/*
Copyright 2017 The Kubernetes Authors.
Licensed under the Apache License, Version 2.0 (the "License");
you may not use this file except in compliance with the License.
You may obtain a copy of the License at
    http://www.apache.org/licenses/LICENSE-2.0
Unless required by applicable law or agreed to in writing, software
distributed under the License is distributed on an "AS IS" BASIS,
WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
See the License for the specific language governing permissions and
limitations under the License.
*/

package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"

	"github.com/ianschenck/envflag"
	"go.uber.org/automaxprocs/maxprocs"
	"k8s.io/klog/v2"

	"github.com/linode/linode-fsutil/cmds"
	"github.com/linode/linode-fsutil/pkg/fsutil"
	"github.com/linode/linode-fsutil/pkg/logger"
	"github.com/linode/linode-fsutil/pkg/observability"
)

var vendorVersion string // set by the linker

type configuration struct {
	// Export spans to the OpenTelemetry collector.
	enableTracing bool

	// Port of the OTLP HTTP endpoint on the otel-collector host.
	tracingPort string

	// When set, all metrics are written to this file in the Prometheus
	// text format before the program exits.
	metricsTextfile string
}

func loadConfig() configuration {
	var cfg configuration
	envflag.BoolVar(&cfg.enableTracing, "ENABLE_TRACING", false, "Export traces to the OpenTelemetry collector")
	envflag.StringVar(&cfg.tracingPort, "OTEL_TRACING_PORT", "4318", "OTLP HTTP port of the OpenTelemetry collector")
	envflag.StringVar(&cfg.metricsTextfile, "METRICS_TEXTFILE", "", "Path of a Prometheus textfile to write metrics to on exit")
	envflag.Parse()
	return cfg
}

func main() {
	klog.InitFlags(nil)
	_ = flag.Set("logtostderr", "true")

	// Create a base context with the logger
	log, ctx := logger.NewLogger(context.Background())
	undoMaxprocs, maxprocsError := maxprocs.Set(maxprocs.Logger(func(msg string, keysAndValues ...interface{}) {
		log.WithValues("component", "maxprocs", "version", maxprocs.Version).V(2).Info(fmt.Sprintf(msg, keysAndValues...))
	}))

	if maxprocsError != nil {
		log.Error(maxprocsError, "Failed to set GOMAXPROCS")
	}

	err := handle(ctx)
	undoMaxprocs()
	klog.Flush()
	if err != nil {
		log.Error(err, "Fatal error")
		os.Exit(1)
	}
}

func handle(ctx context.Context) (err error) {
	log, ctx := logger.GetLogger(ctx)

	if vendorVersion == "" {
		vendorVersion = "dev"
	}
	log.V(4).Info("Vendor version", "version", vendorVersion)

	cfg := loadConfig()

	if cfg.enableTracing {
		if err := observability.InitTracer(ctx, observability.ServiceName, vendorVersion, cfg.tracingPort); err != nil {
			return fmt.Errorf("init tracing: %w", err)
		}
		defer func() {
			if shutdownErr := observability.ShutdownTracer(ctx); shutdownErr != nil {
				err = errors.Join(err, fmt.Errorf("shutdown tracing: %w", shutdownErr))
			}
		}()
	}

	if cfg.metricsTextfile != "" {
		defer func() {
			if writeErr := observability.WriteTextfile(cfg.metricsTextfile); writeErr != nil {
				err = errors.Join(err, fmt.Errorf("write metrics textfile: %w", writeErr))
			}
		}()
	}

	return cmds.NewRootCmd(vendorVersion, fsutil.NewOSUtils()).ExecuteContext(ctx)
}
