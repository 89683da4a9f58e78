package appcore

import (
	"sync"

	"github.com/charmbracelet/log"

	"orfscan-core/scan"
	"orfscan-core/translate"
	"orfscan/internal/fasta"
	"orfscan/internal/output"
	"orfscan/internal/pipeline"
	"orfscan/internal/runutil"
)

// TranslationProcessor emits the six frames of every record.
func TranslationProcessor(s scan.Scanner) pipeline.Processor[output.Item] {
	return pipeline.ProcessorFunc[output.Item](func(rec fasta.Record) ([]output.Item, error) {
		tr, err := s.Translations(scan.Record{ID: rec.ID, Seq: rec.Seq})
		if err != nil {
			return nil, err
		}
		return output.Translations(tr), nil
	})
}

// ORFProcessor emits the qualifying ORFs of every record. An amino-acid
// record written by TranslationProcessor carries its read length as a
// "len=<n>" description.
func ORFProcessor(s scan.Scanner) pipeline.Processor[output.Item] {
	return pipeline.ProcessorFunc[output.Item](func(rec fasta.Record) ([]output.Item, error) {
		n, _ := translate.ParseLengthTag(rec.Desc)
		list, err := s.ORFs(scan.Record{ID: rec.ID, Seq: rec.Seq, ReadLength: n})
		if err != nil {
			return nil, err
		}
		return output.ORFs(list), nil
	})
}

// warnDuplicateIDs wraps p so that a read id seen again within the LRU
// window logs a warning: output ids derive from read ids and would collide.
func warnDuplicateIDs[T any](p pipeline.Processor[T], logger *log.Logger) pipeline.Processor[T] {
	var mu sync.Mutex
	seen := runutil.NewLRUSet[string](runutil.DefaultSeenIDs)
	return pipeline.ProcessorFunc[T](func(rec fasta.Record) ([]T, error) {
		mu.Lock()
		dup := seen.Add(rec.ID)
		mu.Unlock()
		if dup {
			logger.Warn("duplicate read id; output ids will collide", "id", rec.ID)
		}
		return p.Process(rec)
	})
}
