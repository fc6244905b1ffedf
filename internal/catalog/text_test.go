package catalog

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCleanDescription(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"plain text kept as is", "Go  and\n\tSQL ", "Go  and\n\tSQL "},
		{"paragraphs", "<p>Build APIs</p><p>Own services</p>", "Build APIs Own services"},
		{"list", "<ul><li>Go</li><li>gRPC</li></ul>", "Go gRPC"},
		{"scripts dropped", "<div>Hiring<script>track()</script></div>", "Hiring"},
		{"comparison is not markup", "salary < 20 LPA", "salary < 20 LPA"},
		{"empty", "", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, CleanDescription(tt.in))
		})
	}
}
