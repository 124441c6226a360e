package concurrent

// ConvertFileJob is one gpx file of a batch conversion run.
type ConvertFileJob struct {
	InputPath string
	OutputDir string
	RenderPDF bool
}

func NewConvertFileJob(inputPath, outputDir string, renderPDF bool) ConvertFileJob {
	return ConvertFileJob{
		InputPath: inputPath,
		OutputDir: outputDir,
		RenderPDF: renderPDF,
	}
}

type JobI interface {
	ConvertFileJob
}

type JobFunc[T JobI, G any] func(job T) G
