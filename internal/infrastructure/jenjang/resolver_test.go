package jenjang

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/asrulmaaliy26/sma-unggul-bangsa-portal-sub000/internal/domain/entities/levels"
)

func TestResolveDefault(t *testing.T) {
	tests := []struct {
		name       string
		configured string
		host       string
		want       levels.LevelID
	}{
		{"configured wins over hostname", "SMA", "sd.unggulbangsa.sch.id", levels.LevelSMA},
		{"configured is case insensitive", "smp", "", levels.LevelSMP},
		{"hostname first label", "", "sd.unggulbangsa.sch.id", levels.LevelSD},
		{"hostname with port", "", "tk.unggulbangsa.sch.id:8080", levels.LevelTK},
		{"unknown configured falls to hostname", "SMK", "sma.unggulbangsa.sch.id", levels.LevelSMA},
		{"unknown hostname label", "", "www.unggulbangsa.sch.id", levels.Universal},
		{"bare host", "", "localhost:8080", levels.Universal},
		{"empty everything", "", "", levels.Universal},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ResolveDefault(tt.configured, tt.host))
		})
	}
}
