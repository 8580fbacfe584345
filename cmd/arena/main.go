package main

import (
	"embed"
	"flag"
	"io/fs"
	"log"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/younwookim/arena/internal/application/game"
	"github.com/younwookim/arena/internal/application/replay"
	"github.com/younwookim/arena/internal/application/scene/playing"
	"github.com/younwookim/arena/internal/infrastructure/config"
)

//go:embed configs
var configFS embed.FS

func main() {
	arenaFlag := flag.String("arena", "colosseum", "Arena map to load from arenas/<name>.tmx")
	configFlag := flag.String("config", "", "Config directory (default: embedded configs)")
	recordFlag := flag.String("record", "", "Record input to file (e.g., -record replay.json)")
	replayFlag := flag.String("replay", "", "Play back a recorded replay file")
	headlessFlag := flag.Bool("headless", false, "With -replay, simulate without a window and print the result")
	seedFlag := flag.Int64("seed", 0, "RNG seed (default: from the clock)")
	flag.Parse()

	loader, err := newLoader(*configFlag)
	if err != nil {
		log.Fatalf("Failed to get config subfs: %v", err)
	}

	var data *replay.ReplayData
	arenaName := *arenaFlag
	if *replayFlag != "" {
		data, err = replay.LoadReplay(*replayFlag)
		if err != nil {
			log.Fatalf("Failed to load replay: %v", err)
		}
		if data.Arena != "" {
			arenaName = data.Arena
		}
	}

	cfg, err := loader.LoadAll(arenaName)
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	if *headlessFlag {
		if data == nil {
			log.Fatal("-headless requires -replay")
		}
		log.Print(simulate(cfg, *data))
		return
	}

	var scene *playing.Playing
	if data != nil {
		scene = playing.NewReplay(cfg, *data)
	} else {
		scene = playing.New(cfg, *seedFlag, *recordFlag)
	}

	display := cfg.Arena.Display
	g := game.New(scene, display.ScreenWidth, display.ScreenHeight, scene.TickRate())
	defer g.Close()

	ebiten.SetWindowSize(display.ScreenWidth*display.Scale, display.ScreenHeight*display.Scale)
	ebiten.SetWindowTitle("Arena")
	ebiten.SetTPS(scene.TickRate())

	if err := ebiten.RunGame(g); err != nil {
		log.Fatal(err)
	}
}

// newLoader reads configs from dir, or from the embedded copy when dir is empty
func newLoader(dir string) (*config.Loader, error) {
	if dir != "" {
		return config.NewLoader(dir), nil
	}
	fsys, err := fs.Sub(configFS, "configs")
	if err != nil {
		return nil, err
	}
	return config.NewFSLoader(fsys, "configs"), nil
}
