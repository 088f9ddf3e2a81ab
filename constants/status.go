package constants

// Stage is the canonical name for a pipeline phase, used in log events.
type Stage string

const (
	StageDispatch    Stage = "DISPATCH"    // picking the extraction path
	StageExtracting  Stage = "EXTRACTING"  // raw text / row extraction
	StageReconciling Stage = "RECONCILING" // mapping to the canonical shape
	StageDone        Stage = "DONE"        // canonical result produced
	StageFailed      Stage = "FAILED"      // terminal failure (error result)
)
