package main

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"os"

	"github.com/redis/go-redis/v9"

	"github.com/tides-game/tides-api/internal/engine/inventory"
	"github.com/tides-game/tides-api/internal/entities"
)

// checkGrid returns why a stored grid is unusable, or "" when it is sound
func checkGrid(grid *entities.InventoryGrid) string {
	cells := int(grid.Width) * int(grid.Height)
	if cells == 0 {
		return "grid has no cells"
	}
	if len(grid.Items) != cells || len(grid.SlotKinds) != cells {
		return fmt.Sprintf("expected %d cells, have %d items and %d slot kinds", cells, len(grid.Items), len(grid.SlotKinds))
	}

	for _, item := range inventory.Items(grid) {
		if item.InstanceID >= grid.NextInstanceID {
			return fmt.Sprintf("instance %d is not below next_instance_id %d", item.InstanceID, grid.NextInstanceID)
		}
		for dy := uint8(0); dy < item.Height; dy++ {
			for dx := uint8(0); dx < item.Width; dx++ {
				cell := grid.Items[grid.Index(item.X+dx, item.Y+dy)]
				if cell.InstanceID != item.InstanceID {
					return fmt.Sprintf("instance %d does not fill its footprint", item.InstanceID)
				}
			}
		}
	}
	return ""
}

func main() {
	redisURL := os.Getenv("REDIS_URL")
	if redisURL == "" {
		redisURL = "redis://localhost:6379"
	}

	opt, err := redis.ParseURL(redisURL)
	if err != nil {
		log.Fatal("Failed to parse Redis URL:", err)
	}

	client := redis.NewClient(opt)
	ctx := context.Background()

	// Test connection
	if err := client.Ping(ctx).Err(); err != nil {
		log.Fatal("Failed to connect to Redis:", err)
	}

	fmt.Println("Connected to Redis:", redisURL)
	fmt.Println("Scanning for corrupted inventory grids...")

	iter := client.Scan(ctx, 0, "inventory:player:*", 0).Iterator()

	var corruptedKeys []string
	var checkedCount int

	for iter.Next(ctx) {
		key := iter.Val()
		checkedCount++

		data, err := client.Get(ctx, key).Result()
		if err != nil {
			fmt.Printf("Error reading %s: %v\n", key, err)
			continue
		}

		var grid entities.InventoryGrid
		if err := json.Unmarshal([]byte(data), &grid); err != nil {
			fmt.Printf("✗ Corrupted JSON in %s\n", key)
			corruptedKeys = append(corruptedKeys, key)
			continue
		}

		if reason := checkGrid(&grid); reason != "" {
			fmt.Printf("✗ Inconsistent grid in %s: %s\n", key, reason)
			corruptedKeys = append(corruptedKeys, key)
		}
	}

	if err := iter.Err(); err != nil {
		log.Fatal("Error during scan:", err)
	}

	fmt.Printf("\nChecked %d keys, found %d corrupted entries\n", checkedCount, len(corruptedKeys))

	if len(corruptedKeys) == 0 {
		fmt.Println("No corrupted data found!")
		return
	}

	fmt.Println("\nCorrupted keys:")
	for _, key := range corruptedKeys {
		fmt.Printf("  - %s\n", key)
	}

	// Deleting a grid strands its player; they must re-register
	fmt.Print("\nDo you want to DELETE these corrupted entries? (yes/no): ")
	var response string
	fmt.Scanln(&response)

	if response == "yes" {
		for _, key := range corruptedKeys {
			if err := client.Del(ctx, key).Err(); err != nil {
				fmt.Printf("Failed to delete %s: %v\n", key, err)
			} else {
				fmt.Printf("Deleted %s\n", key)
			}
		}
		fmt.Println("\nCleanup complete!")
	} else {
		fmt.Println("Aborted - no changes made")
	}
}
