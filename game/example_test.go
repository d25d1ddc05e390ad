package game_test

import (
	"fmt"

	"github.com/plus3/agilitycamp/config"
	"github.com/plus3/agilitycamp/ecs"
	"github.com/plus3/agilitycamp/game"
)

// ExampleWorld runs a few frames headless. Frontends do the same thing,
// feeding Step with the player's input once per frame.
func ExampleWorld() {
	w := game.New(game.Options{Config: config.Default(), Seed: 1})

	for range 30 {
		w.Step(true)
	}

	camera := w.Camera()
	fmt.Printf("viewport %dx%d\n", camera.Width, camera.Height)

	bones := ecs.NewView[struct{ *game.Bone }](w.Storage)
	count := 0
	for range bones.Values() {
		count++
	}
	fmt.Println("bones:", count)

	// Output:
	// viewport 1280x800
	// bones: 9
}

func ExampleStepPlayer() {
	tuning := config.DefaultTuning()

	y := float32(295)
	y = game.StepPlayer(y, true, &tuning)
	fmt.Println(y)
	y = game.StepPlayer(y, true, &tuning)
	fmt.Println(y)
	y = game.StepPlayer(y, false, &tuning)
	fmt.Println(y)

	// Output:
	// 298
	// 300
	// 298
}
