package asset

// DefaultConfigTOML is the compiled-in configuration, decoded before any user file
const DefaultConfigTOML = `
# === Arena ===
[arena]
# sized for an 80x24 terminal with the score and status lines
width = 80
height = 22

# === Game loop ===
[game]
tick_ms = 100
respawn = true
auto_spawn = false
score_on_respawn = "persist"
seed = 0 # 0 draws a seed from the clock

# === Spawn policy ===
# mode: "random" draws from the arena interior, "fixed" uses each player's start
[spawn]
mode = "random"
margin = 3
attempts = 16

# === Audio ===
[audio]
enabled = true
volume = 0.2

# === Roster ===
[[players]]
id = 1
name = "Cookie Crab"
sprite = "crab"
left = "a"
right = "s"
start = [20, 5]
direction = "right"

[[players]]
id = 2
name = "Sid Starfish"
sprite = "starfish"
left = "k"
right = "l"
start = [60, 5]
direction = "left"

[[players]]
id = 3
name = "Foo Frog"
sprite = "frog"
left = "v"
right = "b"
start = [20, 16]
direction = "right"

[[players]]
id = 4
name = "Jabby Jellyfish"
sprite = "jellyfish"
left = "left"
right = "right"
start = [60, 16]
direction = "left"
`
