// internal/runutil/runutil.go
package runutil

import (
	"runtime"
	"strings"

	"github.com/gedex/inflector"
	"github.com/klauspost/cpuid"
	"github.com/pbnjay/memory"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// EffectiveThreads returns the worker count for a run. A positive request is
// used as-is. Otherwise one worker per physical core.
func EffectiveThreads(requested int) int {
	if requested > 0 {
		return requested
	}
	n := runtime.NumCPU()
	if tpc := cpuid.CPU.ThreadsPerCore; tpc > 1 && n/tpc > 0 {
		n /= tpc
	}
	if n < 1 {
		n = 1
	}
	return n
}

// Host describes the machine, for debug logging.
type Host struct {
	Brand          string
	LogicalCPUs    int
	ThreadsPerCore int
	MemoryBytes    uint64
}

// HostInfo probes the current machine.
func HostInfo() Host {
	return Host{
		Brand:          cpuid.CPU.BrandName,
		LogicalCPUs:    runtime.NumCPU(),
		ThreadsPerCore: cpuid.CPU.ThreadsPerCore,
		MemoryBytes:    memory.TotalMemory(),
	}
}

// Summary is the one-line end-of-run report printed unless --quiet.
// noun is the singular of what was emitted ("translation", "ORF").
func Summary(records, skipped, emitted int, noun string) string {
	p := message.NewPrinter(language.English)
	s := p.Sprintf("%d %s read, %d %s written", records, plural(records, "record"), emitted, plural(emitted, noun))
	if skipped > 0 {
		s += p.Sprintf(", %d %s skipped", skipped, plural(skipped, "record"))
	}
	return s
}

// plural inflects noun for n. Acronyms take a plain "s": the inflector's
// rules would turn "ORF" into "ORves".
func plural(n int, noun string) string {
	if n == 1 {
		return noun
	}
	if strings.ToUpper(noun) == noun {
		return noun + "s"
	}
	return inflector.Pluralize(noun)
}
