package environment

import (
	"context"
	"testing"

	"smm-bot/internal/config"
)

func TestInitTracing(t *testing.T) {
	tests := []struct {
		name     string
		exporter string
		wantErr  bool
	}{
		{name: "none", exporter: "none"},
		{name: "empty", exporter: ""},
		{name: "stdout", exporter: "stdout"},
		{name: "unknown", exporter: "jaeger", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tp, err := initTracing(config.TracingConfig{Exporter: tt.exporter, SampleRatio: 1})
			if tt.wantErr {
				if err == nil {
					t.Fatal("expected error")
				}
				return
			}
			if err != nil {
				t.Fatalf("initTracing: %v", err)
			}
			defer func() { _ = tp.Shutdown(context.Background()) }()

			_, span := tp.Tracer("test").Start(context.Background(), "op")
			defer span.End()
			if !span.SpanContext().TraceID().IsValid() {
				t.Error("span must carry a valid trace id")
			}
		})
	}
}
