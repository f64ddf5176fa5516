// The tracesh command runs an interactive shell for loading, tweaking and
// rendering scenes, grounded on the teacher's cmd/gml shell.
package main

import (
	"errors"
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"
	"strings"

	"github.com/ergochat/readline"

	"github.com/kdstone/whitted-raytracer/internal/camera"
	"github.com/kdstone/whitted-raytracer/internal/canvas"
	"github.com/kdstone/whitted-raytracer/internal/imageio"
	"github.com/kdstone/whitted-raytracer/internal/scene"
	"github.com/kdstone/whitted-raytracer/internal/world"
)

type Command struct {
	// Symbol is the canonical name of the command. It should include the
	// leading ":".
	Symbol       string
	Aliases      []string
	ExpectedArgs []string // For generating help.
	HelpText     string
	Run          func(*State) error
}

// State is the shell's mutable session: the currently loaded scene, the
// image from the last render, and the known commands (for :help).
type State struct {
	args     []string
	world    *world.World
	camera   *camera.Camera
	lastImg  *canvas.Canvas
	commands []*Command
}

var errQuit = errors.New("quit")

func main() {
	rl, err := readline.NewFromConfig(&readline.Config{
		Prompt:       "tracesh> ",
		HistoryFile:  readlineHistoryFilePath(),
		HistoryLimit: 10000,
	})
	if err != nil {
		log.Fatalf("readline init error: %v", err)
	}

	w, cam := scene.ThreeSpheres(200, 100)
	state := &State{world: w, camera: cam}

	var commands []*Command
	commandLookup := make(map[string]*Command)

	registerCommand := func(command *Command) {
		mustAddToLookup := func(symbol string) {
			if commandLookup[symbol] != nil {
				log.Fatalf("duplicate command: %v vs %v", command, commandLookup[symbol])
			}
			commandLookup[symbol] = command
		}
		commands = append(commands, command)
		mustAddToLookup(command.Symbol)
		for _, alias := range command.Aliases {
			mustAddToLookup(alias)
		}
	}

	registerCommand(&Command{
		Symbol:       ":load",
		Aliases:      []string{":l"},
		ExpectedArgs: []string{"<filename>"},
		HelpText:     "Load a scene YAML file",
		Run: func(st *State) error {
			if len(st.args) < 1 {
				return errors.New("usage: :load <filename>")
			}
			w, cam, err := scene.Load(st.args[0])
			if err != nil {
				return err
			}
			st.world, st.camera = w, cam
			fmt.Printf("loaded %s (%d shapes)\n", st.args[0], len(st.world.Shapes))
			return nil
		},
	})
	registerCommand(&Command{
		Symbol:       ":example",
		Aliases:      []string{":ex"},
		ExpectedArgs: []string{"<three-spheres|glass-and-metal>"},
		HelpText:     "Load a canned example scene",
		Run: func(st *State) error {
			name := "three-spheres"
			if len(st.args) > 0 {
				name = st.args[0]
			}
			switch name {
			case "three-spheres":
				st.world, st.camera = scene.ThreeSpheres(st.camera.HSize, st.camera.VSize)
			case "glass-and-metal":
				st.world, st.camera = scene.GlassAndMetal(st.camera.HSize, st.camera.VSize)
			default:
				return fmt.Errorf("unknown example %q", name)
			}
			return nil
		},
	})
	registerCommand(&Command{
		Symbol:       ":resize",
		ExpectedArgs: []string{"<width>", "<height>"},
		HelpText:     "Resize the camera's render dimensions",
		Run: func(st *State) error {
			if len(st.args) < 2 {
				return errors.New("usage: :resize <width> <height>")
			}
			width, height, err := parseDims(st.args)
			if err != nil {
				return err
			}
			view := st.camera.Transform
			st.camera = camera.New(width, height, st.camera.FOV)
			st.camera.SetTransform(view)
			return nil
		},
	})
	registerCommand(&Command{
		Symbol:   ":render",
		Aliases:  []string{":r"},
		HelpText: "Render the current scene",
		Run: func(st *State) error {
			fmt.Printf("rendering %dx%d, %d shapes...\n", st.camera.HSize, st.camera.VSize, len(st.world.Shapes))
			st.lastImg = camera.RenderParallel(st.camera, st.world)
			fmt.Println("done")
			return nil
		},
	})
	registerCommand(&Command{
		Symbol:       ":save",
		Aliases:      []string{":s"},
		ExpectedArgs: []string{"<filename>"},
		HelpText:     "Save the last render as a PPM or PNG (by extension)",
		Run: func(st *State) error {
			if st.lastImg == nil {
				return errors.New("nothing rendered yet; run :render first")
			}
			if len(st.args) < 1 {
				return errors.New("usage: :save <filename>")
			}
			return saveImage(st.lastImg, st.args[0])
		},
	})
	registerCommand(&Command{
		Symbol:   ":help",
		Aliases:  []string{":h"},
		HelpText: "Prints this help text",
		Run:      showHelp,
	})
	registerCommand(&Command{
		Symbol:   ":quit",
		Aliases:  []string{":q"},
		HelpText: "Exit the shell",
		Run: func(st *State) error {
			return errQuit
		},
	})
	state.commands = commands

	for {
		line, err := rl.Readline()
		if err != nil {
			if errors.Is(err, readline.ErrInterrupt) || errors.Is(err, io.EOF) {
				return
			}
			log.Fatalf("readline error: %v", err)
		}
		line = strings.TrimSpace(line)
		if len(line) == 0 {
			continue
		}
		if line[0] != ':' {
			fmt.Println("input must be a shell command; type :help")
			continue
		}
		args := parseCommandArgs(line)
		cmd := commandLookup[args[0]]
		if cmd == nil {
			fmt.Printf("Unknown command: %v\n", args[0])
			continue
		}
		state.args = args[1:]
		err = cmd.Run(state)
		if errors.Is(err, errQuit) {
			return
		}
		if err != nil {
			fmt.Printf("command error: %v\n", err)
		}
	}
}

func saveImage(img *canvas.Canvas, filename string) error {
	f, err := os.Create(filename)
	if err != nil {
		return err
	}
	defer f.Close()

	if strings.HasSuffix(filename, ".png") {
		return imageio.WritePNG(f, img)
	}
	return imageio.WritePPM(f, img)
}

func parseDims(args []string) (int, int, error) {
	var width, height int
	if _, err := fmt.Sscanf(args[0], "%d", &width); err != nil {
		return 0, 0, fmt.Errorf("invalid width %q", args[0])
	}
	if _, err := fmt.Sscanf(args[1], "%d", &height); err != nil {
		return 0, 0, fmt.Errorf("invalid height %q", args[1])
	}
	return width, height, nil
}

func showHelp(st *State) error {
	usageHelp := make([]string, len(st.commands))
	maxLen := 0
	for i, command := range st.commands {
		parts := []string{command.Symbol}
		parts = append(parts, command.Aliases...)
		parts = append(parts, command.ExpectedArgs...)
		usageHelp[i] = strings.Join(parts, " ")
		maxLen = max(maxLen, len(usageHelp[i]))
	}
	fmt.Printf("Commands:\n")
	for i, command := range st.commands {
		fmt.Printf("  %-*s : %s\n", maxLen, usageHelp[i], command.HelpText)
	}
	return nil
}

func readlineHistoryFilePath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		log.Printf("user home dir error: %v\n", err)
		return ""
	}
	return filepath.Join(home, ".tracesh_history")
}

func parseCommandArgs(line string) []string {
	var args []string
	var start int
	for i := range line {
		curr := line[i]
		if strings.IndexByte(" \t\n\r", curr) != -1 {
			if start < i {
				args = append(args, line[start:i])
			}
			start = i + 1
		}
	}
	if start < len(line) {
		args = append(args, line[start:])
	}
	return args
}
