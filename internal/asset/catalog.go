package asset

import (
	"github.com/tomz197/invaders/internal/config"
	"github.com/tomz197/invaders/internal/draw"
)

var builtinImages = map[string]*Image{
	InvaderImage(1, 0): {W: 35, H: 35, Color: draw.ColorMagenta, Rows: []string{
		"...##...",
		"..####..",
		".######.",
		"##.##.##",
		"########",
		"..#..#..",
		".#.##.#.",
		"#.#..#.#",
	}},
	InvaderImage(1, 1): {W: 35, H: 35, Color: draw.ColorMagenta, Rows: []string{
		"...##...",
		"..####..",
		".######.",
		"##.##.##",
		"########",
		".#.##.#.",
		"#......#",
		".#....#.",
	}},
	InvaderImage(2, 0): {W: 48, H: 35, Color: draw.ColorCyan, Rows: []string{
		"..#.....#..",
		"...#...#...",
		"..#######..",
		".##.###.##.",
		"###########",
		"#.#######.#",
		"#.#.....#.#",
		"...##.##...",
	}},
	InvaderImage(2, 1): {W: 48, H: 35, Color: draw.ColorCyan, Rows: []string{
		"..#.....#..",
		"#..#...#..#",
		"#.#######.#",
		"###.###.###",
		"###########",
		".#########.",
		"..#.....#..",
		".#.......#.",
	}},
	InvaderImage(3, 0): {W: 52, H: 35, Color: draw.ColorGreen, Rows: []string{
		"....####....",
		".##########.",
		"############",
		"###..##..###",
		"############",
		"...##..##...",
		"..##.##.##..",
		"##........##",
	}},
	InvaderImage(3, 1): {W: 52, H: 35, Color: draw.ColorGreen, Rows: []string{
		"....####....",
		".##########.",
		"############",
		"###..##..###",
		"############",
		"..###..###..",
		".##..##..##.",
		"..##....##..",
	}},
	ImagePlayer: {W: config.PlayerWidth, H: config.PlayerHeight, Color: draw.ColorGreen, Rows: []string{
		"......#......",
		".....###.....",
		".....###.....",
		".###########.",
		"#############",
		"#############",
		"#############",
		"#############",
	}},
	ImageBonus: {W: config.BonusWidth, H: config.BonusHeight, Color: draw.ColorRed, Rows: []string{
		".....######.....",
		"...##########...",
		"..############..",
		".##.##.##.##.##.",
		"################",
		"..###..##..###..",
		"...#........#...",
	}},
	ImageExplosion: {W: config.ExplosionSize, H: config.ExplosionSize, Color: draw.ColorYellow, Rows: []string{
		"....#...#....",
		".#...#.#...#.",
		"..#.......#..",
		"...#.....#...",
		"##.........##",
		"...#.....#...",
		"..#..#.#..#..",
		".#...#.#...#.",
	}},
	ImagePlayerBullet: {W: config.PlayerBulletWidth, H: config.PlayerBulletHeight, Color: draw.ColorWhite, Rows: []string{
		"#",
	}},
	ImageEnemyBullet: {W: config.EnemyBulletWidth, H: config.EnemyBulletHeight, Color: draw.ColorRed, Rows: []string{
		".#.",
		"#..",
		".#.",
		"..#",
		".#.",
		"#..",
		".#.",
	}},
}

var builtinSounds = map[string]Cue{
	SoundShoot:         CueShoot,
	SoundInvaderKilled: CueInvaderKilled,
	SoundExplosion:     CueExplosion,
}

// shieldShape is the outline of a whole shield, one 4x4 block per cell,
// indexed [row][col].
var shieldShape = [config.ShieldRows][config.ShieldCols][4]string{
	{
		{"..##", ".###", "####", "####"},
		{"####", "####", "####", "####"},
		{"####", "####", "####", "####"},
		{"##..", "###.", "####", "####"},
	},
	{
		{"####", "####", "####", "####"},
		{"####", "##..", "#...", "#..."},
		{"####", "..##", "...#", "...#"},
		{"####", "####", "####", "####"},
	},
}

// shieldWear masks the shape for each damage stage.
var shieldWear = [config.CellMaxHits][4]string{
	{"####", "####", "####", "####"},
	{"#.##", "####", "##.#", "####"},
	{"#.#.", ".###", "##..", "#.#."},
	{"#...", "..#.", "#...", "..#."},
}

func init() {
	for stage := range config.CellMaxHits {
		for row := range config.ShieldRows {
			for col := range config.ShieldCols {
				path := ShieldCellImage(stage, col, row)
				builtinImages[path] = shieldCell(stage, col, row)
			}
		}
	}
	for path, img := range builtinImages {
		img.Path = path
	}
}

func shieldCell(stage, col, row int) *Image {
	shape := shieldShape[row][col]
	wear := shieldWear[stage]
	rows := make([]string, len(shape))
	for i := range shape {
		line := []byte(shape[i])
		for j := range line {
			if wear[i][j] == '.' {
				line[j] = '.'
			}
		}
		rows[i] = string(line)
	}
	return &Image{
		W:     config.ShieldCellW,
		H:     config.ShieldCellH,
		Color: draw.ColorGreen,
		Rows:  rows,
	}
}

// placeholder is what an unknown image path resolves to.
func placeholder(path string) *Image {
	return &Image{
		Path:  path,
		W:     24,
		H:     24,
		Color: draw.ColorMagenta,
		Rows:  []string{"#.", ".#"},
	}
}
