package exit

// Exit codes understood by the lifecycle when it runs bin/detect and bin/build.
const (
	CodeForPass        = 0
	CodeForFailed      = 1
	CodeForInvalidArgs = 3
	CodeForDetectFail  = 100
)
