package book

import (
	"context"
	"time"

	"go.opentelemetry.io/otel/attribute"

	"github.com/xiebiao/bookshelf/pkg/metrics"
	"github.com/xiebiao/bookshelf/pkg/tracing"
)

// observe 为一次用例执行开启子span并计时
// 返回的done必须调用一次,负责结束span与记录指标
//
//	ctx, done := observe(ctx, metrics.OpGet)
//	b, err := uc.bookService.GetByID(ctx, id)
//	done(err)
func observe(ctx context.Context, operation string) (context.Context, func(error)) {
	start := time.Now()
	ctx, span := tracing.StartSpan(ctx, "book."+operation)
	span.SetAttributes(attribute.String("book.operation", operation))

	return ctx, func(err error) {
		// NotFound与参数错误属于正常业务结果,不标记span为错误
		if metrics.ResultOf(err) == metrics.ResultError {
			tracing.EndSpan(span, err)
		} else {
			span.End()
		}
		metrics.ObserveBookOperation(operation, err, start)
	}
}
