package redis

import "github.com/redis/go-redis/v9"

// setFieldsScript writes and deletes hash fields only when the record exists.
// ARGV: nSet, then nSet field/value pairs, then fields to delete.
var setFieldsScript = redis.NewScript(`
if redis.call('EXISTS', KEYS[1]) == 0 then
  return 0
end
local nset = tonumber(ARGV[1])
local i = 2
for _ = 1, nset do
  redis.call('HSET', KEYS[1], ARGV[i], ARGV[i + 1])
  i = i + 2
end
while i <= #ARGV do
  redis.call('HDEL', KEYS[1], ARGV[i])
  i = i + 1
end
return 1
`)

// claimScript records a delivery claim when the stored lastSentAt is lower
// than the target. Returns -1 for a missing record, 0 when already claimed.
var claimScript = redis.NewScript(`
if redis.call('EXISTS', KEYS[1]) == 0 then
  return -1
end
local last = tonumber(redis.call('HGET', KEYS[1], 'lastSentAt') or '0') or 0
if last >= tonumber(ARGV[1]) then
  return 0
end
redis.call('HSET', KEYS[1], 'lastSentAt', ARGV[1], 'lastSentName', ARGV[2])
return 1
`)

// releaseScript restores the previous lastSentAt/lastSentName if the claim
// for ARGV[1] is still stored.
var releaseScript = redis.NewScript(`
if redis.call('HGET', KEYS[1], 'lastSentAt') ~= ARGV[1] then
  return 0
end
if ARGV[2] == '0' then
  redis.call('HDEL', KEYS[1], 'lastSentAt', 'lastSentName')
  return 1
end
redis.call('HSET', KEYS[1], 'lastSentAt', ARGV[2])
if ARGV[3] == '' then
  redis.call('HDEL', KEYS[1], 'lastSentName')
else
  redis.call('HSET', KEYS[1], 'lastSentName', ARGV[3])
end
return 1
`)
