package main

import (
	"flag"
	"log"

	"github.com/cozypark/cozypark/assets"
	"github.com/cozypark/cozypark/config"
	"github.com/cozypark/cozypark/fonts"
	"github.com/cozypark/cozypark/logging"
	"github.com/cozypark/cozypark/network"
	"github.com/cozypark/cozypark/scenes"
	"github.com/cozypark/cozypark/session"
	"github.com/cozypark/cozypark/shared/netcomponents"
	"github.com/cozypark/cozypark/shared/parkmap"
	"github.com/cozypark/cozypark/shared/protocol"
	"github.com/cozypark/cozypark/systems"
	"github.com/hajimehoshi/ebiten/v2"
)

type Scene interface {
	Update()
	Draw(screen *ebiten.Image)
	Layout(outsideWidth, outsideHeight int) (int, int)
}

type Game struct {
	scene Scene
}

func (g *Game) Update() error {
	g.scene.Update()
	return nil
}

func (g *Game) Draw(screen *ebiten.Image) {
	g.scene.Draw(screen)
}

func (g *Game) Layout(width, height int) (int, int) {
	return g.scene.Layout(width, height)
}

func main() {
	env, err := config.LoadEnv()
	if err != nil {
		log.Fatalf("Failed to load environment: %v", err)
	}

	serverURL := flag.String("server", env.ServerURL, "Park server websocket URL")
	color := flag.String("color", env.Color, "Avatar colour (pink or blue)")
	flag.Parse()

	logger, err := logging.Init(logging.Options{File: env.LogFile, Level: env.LogLevel})
	if err != nil {
		log.Fatalf("Failed to init logging: %v", err)
	}
	defer logging.Sync()

	if err := systems.InitPersistence(); err != nil {
		logger.Warnw("Could not initialize persistence", "error", err)
	}
	prefs, _ := systems.LoadPreferences()
	avatar := pickColor(*color, prefs)
	url := *serverURL
	if prefs != nil && prefs.ServerURL != "" && !flagSet("server") && env.ServerURL == config.Network.ServerURL {
		url = prefs.ServerURL
	}

	layout, err := parkmap.Load(assets.FS(), assets.ParkMap)
	if err != nil {
		log.Fatalf("Failed to load park map: %v", err)
	}
	if err := fonts.LoadDefaults(config.UI.HUDFontSize, config.UI.TitleFontSize); err != nil {
		log.Fatalf("Failed to load fonts: %v", err)
	}

	client := network.NewClient(logger)
	s := session.New(session.Options{
		Layout: layout,
		Oracle: systems.NewParkCollision(layout),
		Inbox:  client,
		Sender: client,
		Log:    logger,
		Color:  avatar,
	})
	loop := systems.Install(session.NewGameLoop(s, config.Loop.Interval))

	logger.Infow("Connecting to park", "url", url, "color", avatar)
	client.Connect(url, protocol.Hello(*s.LocalState()))
	defer client.Disconnect()

	if err := systems.SavePreferences(&systems.SavedPreferences{Color: string(avatar), ServerURL: url}); err != nil {
		logger.Warnw("Could not save preferences", "error", err)
	}

	ebiten.SetWindowTitle(config.C.Title)
	ebiten.SetWindowSize(config.C.Width, config.C.Height)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)

	game := &Game{scene: scenes.NewParkScene(s, loop, client)}
	if err := ebiten.RunGame(game); err != nil {
		log.Fatal(err)
	}
}

// pickColor prefers the flag or environment, then the saved preference,
// then pink.
func pickColor(requested string, prefs *systems.SavedPreferences) netcomponents.Color {
	if c := netcomponents.Color(requested); c.Valid() {
		return c
	}
	if prefs != nil {
		if c := netcomponents.Color(prefs.Color); c.Valid() {
			return c
		}
	}
	return netcomponents.ColorPink
}

func flagSet(name string) bool {
	set := false
	flag.Visit(func(f *flag.Flag) {
		if f.Name == name {
			set = true
		}
	})
	return set
}
