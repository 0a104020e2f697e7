package video

import (
	"context"
	"fmt"
	"os/exec"
	"strings"

	"github.com/1F47E/go-adofai-art/internal/logger"
)

// call ffmpeg to decode the video into frames
func ExtractFrames(ctx context.Context, filename, dir, format string) error {
	framesPath := fmt.Sprintf("%s/out_%%08d.%s", dir, format)
	cmdStr := fmt.Sprintf("ffmpeg -y -i %s %s", filename, framesPath)
	cmdList := strings.Split(cmdStr, " ")
	logger.Log.Debugf("Running ffmpeg command: %s\n", cmdStr)
	cmd := exec.CommandContext(ctx, cmdList[0], cmdList[1:]...)
	if err := cmd.Run(); err != nil {
		return fmt.Errorf("ffmpeg failed on %s: %w", filename, err)
	}
	return nil
}
