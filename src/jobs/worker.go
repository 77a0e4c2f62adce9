package jobs

import (
	"context"
	"encoding/json"
	"fmt"
	"log"

	"summer-camp-server/src/repositories"

	"github.com/hibiken/asynq"
)

// HandleCartCleanupTask ลบรายการในตะกร้าที่ checkout ลบไม่สำเร็จ
func HandleCartCleanupTask(carts repositories.CartRepository) asynq.HandlerFunc {
	return func(ctx context.Context, t *asynq.Task) error {
		var payload CartCleanupPayload
		if err := json.Unmarshal(t.Payload(), &payload); err != nil {
			log.Println("❌ Payload decode error:", err)
			// payload เสีย retry ไปก็ไม่สำเร็จ
			return fmt.Errorf("decode payload: %v: %w", err, asynq.SkipRetry)
		}

		res, err := carts.DeleteByClass(ctx, payload.ClassID, payload.MyEmail)
		if err != nil {
			log.Println("❌ Failed to remove cart entry:", err)
			return err
		}
		if res.DeletedCount == 0 {
			log.Println("⚠️ Cart entry already gone. Skipping task:", payload.ClassID, payload.MyEmail)
			return nil
		}

		log.Println("✅ Cart entry removed after checkout:", payload.ClassID, payload.MyEmail)
		return nil
	}
}

// RegisterHandlers ผูก handler กับ task type ทั้งหมด
func RegisterHandlers(mux *asynq.ServeMux, carts repositories.CartRepository) {
	mux.HandleFunc(TypeCartCleanup, HandleCartCleanupTask(carts))
}

// StartWorker starts the asynq server in the background. Stop it with Shutdown.
func StartWorker(redisAddr string, carts repositories.CartRepository) (*asynq.Server, error) {
	srv := asynq.NewServer(asynq.RedisClientOpt{Addr: redisAddr}, asynq.Config{
		Concurrency: 2,
	})
	mux := asynq.NewServeMux()
	RegisterHandlers(mux, carts)
	if err := srv.Start(mux); err != nil {
		return nil, fmt.Errorf("start asynq worker: %w", err)
	}
	log.Println("✅ Asynq worker started")
	return srv, nil
}
