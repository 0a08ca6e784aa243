package trend

import (
	"strconv"
	"strings"

	"github.com/de-tools/bug-trends/pkg/models/domain"
)

// FormatCumulative renders points as a brace literal, e.g. {{1,2}, {2,5}}
func FormatCumulative(points []domain.CumulativePoint) string {
	var sb strings.Builder
	sb.WriteByte('{')
	for i, p := range points {
		if i > 0 {
			sb.WriteString(", ")
		}
		sb.WriteByte('{')
		sb.WriteString(strconv.Itoa(p.Index))
		sb.WriteByte(',')
		sb.WriteString(strconv.Itoa(p.Total))
		sb.WriteByte('}')
	}
	sb.WriteByte('}')
	return sb.String()
}
