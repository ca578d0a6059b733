package collector

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/ftahirops/xstatus/model"
	"github.com/ftahirops/xstatus/util"
)

// Token positions in pactl output:
//
//	Volume: front-left: 65536 / 100% / 0.00 dB,   front-right: ...
//	Mute: no
const (
	volumeToken = 4
	muteToken   = 1
)

// AudioCollector queries the default sink through pactl.
type AudioCollector struct {
	Command string        // pactl
	Sink    string        // @DEFAULT_SINK@
	Timeout time.Duration // per invocation, 0 for none
	Runner  util.Runner
}

func (a *AudioCollector) Name() string { return "audio" }

func (a *AudioCollector) Collect(ctx context.Context, snap *model.Snapshot) error {
	vol, err := a.Read(ctx)
	if err != nil {
		return err
	}
	snap.Volume = &vol
	return nil
}

// Read runs the volume and mute queries and parses both.
func (a *AudioCollector) Read(ctx context.Context) (model.Volume, error) {
	var vol model.Volume

	out, err := a.run(ctx, "get-sink-volume")
	if err != nil {
		return vol, err
	}
	if vol.Level, err = ParseVolume(out); err != nil {
		return vol, err
	}

	out, err = a.run(ctx, "get-sink-mute")
	if err != nil {
		return vol, err
	}
	if vol.Muted, err = ParseMute(out); err != nil {
		return vol, err
	}
	return vol, nil
}

func (a *AudioCollector) run(ctx context.Context, query string) (string, error) {
	args := []string{a.Command, query, a.Sink}
	if a.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, a.Timeout)
		defer cancel()
	}

	out, err := a.Runner.Output(ctx, args[0], args[1:]...)
	if err != nil {
		if errors.Is(ctx.Err(), context.DeadlineExceeded) {
			err = fmt.Errorf("timed out after %s", a.Timeout)
		}
		return "", &CommandError{Args: args, Err: err}
	}
	if !utf8.Valid(out) {
		return "", &CommandError{Args: args, Err: errors.New("output is not valid UTF-8")}
	}
	return string(out), nil
}

// ParseVolume extracts the first channel's percentage from
// "pactl get-sink-volume" output.
func ParseVolume(out string) (int, error) {
	tok := util.FieldsAt(out, volumeToken)
	if tok == "" {
		return 0, &ParseError{Source: "get-sink-volume", Detail: fmt.Sprintf("no token at position %d in %q", volumeToken, out)}
	}
	n, err := strconv.Atoi(strings.TrimSuffix(tok, "%"))
	if err != nil || n < 0 || !strings.HasSuffix(tok, "%") {
		return 0, &ParseError{Source: "get-sink-volume", Detail: fmt.Sprintf("%q is not a percentage", tok)}
	}
	return n, nil
}

// ParseMute maps "pactl get-sink-mute" output to a bool.
func ParseMute(out string) (bool, error) {
	switch tok := util.FieldsAt(out, muteToken); tok {
	case "yes":
		return true, nil
	case "no":
		return false, nil
	default:
		return false, &ParseError{Source: "get-sink-mute", Detail: fmt.Sprintf("unexpected mute token %q", tok)}
	}
}
