package main

import (
	"fmt"
	"log"
	"os"

	"github.com/netisu/orbis"
)

func main() {
	eye := orbis.V(10, 4, 14)
	center := orbis.V(0, 0, 0)
	up := orbis.V(0, 1, 0)
	light := orbis.V(-1, 0.4, 0.6).Normalize()

	matrix := orbis.LookAt(eye, center, up).Perspective(45, 1, 0.1, 1000)

	ring := orbis.NewRingShader(matrix, light, eye)
	ring.InnerRadius = 4
	ring.OuterRadius = 9
	ring.PlanetRadius = 3 * orbis.PlanetLocalScale
	ring.SunRadius = 300
	ring.SunPosition = orbis.V(-90000, 20000, 40000)
	ring.BaseColor = orbis.HexColor("d8c9a3")
	ring.Prepare()

	planet := orbis.NewPlanetObject(3, 64, 32)
	planet.SetColor(orbis.HexColor("c2a878"))
	ringObject := orbis.NewRingObject(4, 9, 256, 8)

	cfg := orbis.RingSceneConfig{
		Eye: eye, Center: center, Up: up,
		FovY: 45, Near: 0.1, Far: 1000,
		Size: 512, Scale: 2,
		LightDirection: light,
	}

	file, err := os.Create("ring.png")
	if err != nil {
		log.Fatal(err)
	}
	defer file.Close()

	if err := orbis.GenerateRingScene(file, cfg, ring, planet, ringObject); err != nil {
		log.Fatal(err)
	}
	fmt.Println("wrote ring.png")
}
